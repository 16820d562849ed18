package sandbox

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// RuleCount reports how often one normalization rule fired. Counts land
// in the sandbox report so repeated compensations for the same generator
// mistake stay visible instead of silently papering over it.
type RuleCount struct {
	Rule  string `json:"rule"`
	Count int    `json:"count"`
}

// rule is one compensating rewrite for a known code-generation mistake.
// apply returns the rewritten content and how many times the rule fired.
type rule struct {
	name  string
	apply func(path, content string) (string, int)
}

// Normalizer rewrites generated Python sources before deployment,
// compensating for recurring generator mistakes (pydantic v1 kwargs,
// missing async markers, swallowed exceptions, async SQLAlchemy in a
// sync app). Rules run in a fixed order; each is named and counted.
type Normalizer struct {
	rules []rule
}

// NewNormalizer returns a normalizer with the built-in rule set.
func NewNormalizer() *Normalizer {
	return &Normalizer{rules: []rule{
		{"pydantic-pattern-kwarg", patternKwarg},
		{"database-engine-binding", engineBinding},
		{"recursive-get-db", recursiveGetDB},
		{"pydantic-field-validator", fieldValidator},
		{"async-def-await", asyncifyAwaitingDefs},
		{"swallowed-exception", swallowedException},
		{"startup-create-db", startupCreateDB},
		{"schema-to-model-add", schemaToModelAdd},
		{"sync-database-driver", syncDatabaseDriver},
	}}
}

// Apply runs every rule against one file and returns the rewritten
// content plus the counts of rules that fired. path is relative to the
// project root; two rules gate on the file's base name.
func (n *Normalizer) Apply(path, content string) (string, []RuleCount) {
	var counts []RuleCount
	for _, r := range n.rules {
		rewritten, fired := r.apply(path, content)
		if fired > 0 {
			content = rewritten
			counts = append(counts, RuleCount{Rule: r.name, Count: fired})
		}
	}
	return content, counts
}

// NormalizeDir applies the rules to every .py file under root, rewriting
// changed files in place, and returns the aggregated rule counts.
func (n *Normalizer) NormalizeDir(root string) ([]RuleCount, error) {
	totals := make(map[string]int)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".py") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", rel, err)
		}
		rewritten, counts := n.Apply(rel, string(data))
		if len(counts) == 0 {
			return nil
		}
		for _, c := range counts {
			totals[c.Rule] += c.Count
			slog.Debug("normalization rule fired", "file", rel, "rule", c.Rule, "count", c.Count)
		}
		if err := os.WriteFile(path, []byte(rewritten), 0o644); err != nil {
			return fmt.Errorf("rewriting %s: %w", rel, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Preserve registration order in the report.
	var report []RuleCount
	for _, r := range n.rules {
		if totals[r.name] > 0 {
			report = append(report, RuleCount{Rule: r.name, Count: totals[r.name]})
		}
	}
	return report, nil
}

// replaceCounting is strings.ReplaceAll that also reports how many
// replacements it made.
func replaceCounting(content, old, new string) (string, int) {
	n := strings.Count(content, old)
	if n == 0 {
		return content, 0
	}
	return strings.ReplaceAll(content, old, new), n
}

// patternKwarg rewrites the pydantic v1 `regex=` Field kwarg to the v2
// `pattern=` spelling.
func patternKwarg(_, content string) (string, int) {
	return replaceCounting(content, "regex=", "pattern=")
}

// engineBinding fixes code that reaches the engine through a session
// factory: `bind=get_db().bind` needs the module-level engine, which in
// turn needs importing.
func engineBinding(_, content string) (string, int) {
	fired := 0
	if strings.Contains(content, "from .database import get_db") &&
		!strings.Contains(content, "from .database import get_db, engine") {
		content = strings.ReplaceAll(content,
			"from .database import get_db", "from .database import get_db, engine")
		fired++
	}
	var n int
	content, n = replaceCounting(content, "bind=get_db().bind", "bind=engine")
	return content, fired + n
}

var (
	getDBImportRe    = regexp.MustCompile(`from\s+\S+\s+import\s+.*get_db`)
	getDBDefRe       = regexp.MustCompile(`def\s+get_db\s*\(`)
	recursiveGetDBRe = regexp.MustCompile(`def\s+get_db\s*\([^)]*\)[^:]*:\s*\n\s*return\s+get_db\(\)`)
)

// recursiveGetDB removes a get_db wrapper in dependencies.py that both
// imports get_db and re-defines it as `return get_db()`, which recurses
// forever at request time.
func recursiveGetDB(path, content string) (string, int) {
	if filepath.Base(path) != "dependencies.py" || !strings.Contains(content, "def get_db") {
		return content, 0
	}
	if !getDBImportRe.MatchString(content) || !getDBDefRe.MatchString(content) {
		return content, 0
	}
	fired := len(recursiveGetDBRe.FindAllString(content, -1))
	if fired == 0 {
		return content, 0
	}
	content = recursiveGetDBRe.ReplaceAllString(content,
		"# get_db is re-exported from database module (auto-patched)")
	return content, fired
}

// fieldValidator rewrites the pydantic v1 validator import to the v2
// field_validator.
func fieldValidator(_, content string) (string, int) {
	return replaceCounting(content,
		"from pydantic import validator", "from pydantic import field_validator")
}

var syncDefRe = regexp.MustCompile(`(?m)^([ \t]*)def\s+(\w+)\s*\(([^)]*)\)([^:]*:)`)

// asyncifyAwaitingDefs marks functions whose body contains `await` as
// async. A plain def with an await inside is a SyntaxError the generator
// produces often enough to compensate for.
func asyncifyAwaitingDefs(_, content string) (string, int) {
	matches := syncDefRe.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return content, 0
	}
	var b strings.Builder
	last, fired := 0, 0
	for _, m := range matches {
		if !strings.Contains(functionBody(content, m[0]), "await ") {
			continue
		}
		indentEnd := m[3] // end of the leading-whitespace group
		b.WriteString(content[last:indentEnd])
		b.WriteString("async ")
		last = indentEnd
		fired++
	}
	if fired == 0 {
		return content, 0
	}
	b.WriteString(content[last:])
	return b.String(), fired
}

// functionBody returns the lines belonging to the function whose def
// starts at defStart: everything after the def line until a non-blank
// line at the def's indent level or shallower.
func functionBody(content string, defStart int) string {
	lines := strings.Split(content[defStart:], "\n")
	if len(lines) == 0 {
		return ""
	}
	defLine := lines[0]
	defIndent := len(defLine) - len(strings.TrimLeft(defLine, " \t"))
	var body []string
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			body = append(body, line)
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent <= defIndent {
			break
		}
		body = append(body, line)
	}
	return strings.Join(body, "\n")
}

var swallowedExceptionRe = regexp.MustCompile(
	`    except Exception as e:\s*\n` +
		`        print\(f"Error[^"]*: \{e\}"\)\s*\n` +
		`        (?:db\.rollback\(\)\s*\n\s*)?` +
		`        return None`)

// swallowedException replaces except blocks that print and return None
// with rollback+raise. Returning None from a route handler hides the
// real DB error and fails later as a ResponseValidationError.
func swallowedException(_, content string) (string, int) {
	fired := len(swallowedExceptionRe.FindAllString(content, -1))
	if fired == 0 {
		return content, 0
	}
	content = swallowedExceptionRe.ReplaceAllString(content,
		"    except Exception:\n        db.rollback()\n        raise")
	return content, fired
}

// startupCreateDBBlock is appended to a main.py that defines the app but
// never calls create_db. The import is guarded so an app whose
// database.py lacks create_db still boots.
const startupCreateDBBlock = `
@app.on_event('startup')
def on_startup():
    try:
        from app.database import create_db
        create_db()
    except ImportError:
        pass
`

// startupCreateDB ensures main.py calls create_db() on startup when the
// generator defined it in database.py but forgot to invoke it.
func startupCreateDB(path, content string) (string, int) {
	if filepath.Base(path) != "main.py" || strings.Contains(content, "create_db") {
		return content, 0
	}
	if !strings.Contains(content, "app = FastAPI") {
		return content, 0
	}
	return content + startupCreateDBBlock, 1
}

var dbAddSchemaRe = regexp.MustCompile(`(?m)^([ \t]+)(db\.add\()(\w+)(\))`)

const dbAddSchemaRepl = "${1}# Auto-patch: convert Pydantic schema to ORM model if needed\n" +
	"${1}if hasattr(${3}, 'model_dump') and not hasattr(${3}, '__tablename__'):\n" +
	"${1}    import app.models as _models\n" +
	"${1}    _cls_name = type(${3}).__name__.replace('Create', '').replace('Update', '').replace('Base', '')\n" +
	"${1}    _cls = getattr(_models, _cls_name, None)\n" +
	"${1}    if _cls and hasattr(_cls, '__tablename__'):\n" +
	"${1}        ${3} = _cls(**${3}.model_dump())\n" +
	"${1}${2}${3}${4}"

// schemaToModelAdd guards db.add(obj) calls against being handed a
// pydantic schema instead of the ORM model (UnmappedInstanceError). The
// injected check converts at runtime when the object has model_dump but
// no __tablename__.
func schemaToModelAdd(_, content string) (string, int) {
	fired := len(dbAddSchemaRe.FindAllString(content, -1))
	if fired == 0 {
		return content, 0
	}
	return dbAddSchemaRe.ReplaceAllString(content, dbAddSchemaRepl), fired
}

// syncDatabaseDriver downgrades async SQLAlchemy usage to the sync API.
// Generated apps gain nothing from async DB access and the async drivers
// are a recurring source of sandbox boot failures. Import lines are
// rewritten before the blanket identifier swaps that would mangle them.
func syncDatabaseDriver(_, content string) (string, int) {
	fired := 0
	if strings.Contains(content, "create_async_engine") {
		content = strings.ReplaceAll(content,
			"from sqlalchemy.ext.asyncio import create_async_engine",
			"from sqlalchemy import create_engine")
		content = strings.ReplaceAll(content, "create_async_engine", "create_engine")
		content = strings.ReplaceAll(content, "sqlite+aiosqlite:///", "sqlite:///")
		fired++
	}
	if strings.Contains(content, "AsyncSession") {
		content = strings.ReplaceAll(content,
			"from sqlmodel.ext.asyncio.session import AsyncSession",
			"from sqlmodel import Session")
		content = strings.ReplaceAll(content,
			"from sqlalchemy.ext.asyncio import AsyncSession",
			"from sqlmodel import Session")
		content = strings.ReplaceAll(content, "AsyncSession", "Session")
		fired++
	}
	if strings.Contains(content, "async_sessionmaker") {
		content = strings.ReplaceAll(content,
			"from sqlalchemy.ext.asyncio import async_sessionmaker",
			"from sqlalchemy.orm import sessionmaker")
		content = strings.ReplaceAll(content, "async_sessionmaker", "sessionmaker")
		fired++
	}
	return content, fired
}
