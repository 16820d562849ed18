package sandbox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applyRule(t *testing.T, path, content string) (string, []RuleCount) {
	t.Helper()
	return NewNormalizer().Apply(path, content)
}

func ruleCount(counts []RuleCount, name string) int {
	for _, c := range counts {
		if c.Rule == name {
			return c.Count
		}
	}
	return 0
}

func TestNormalizer_PatternKwarg(t *testing.T) {
	out, counts := applyRule(t, "app/schemas.py",
		"name: str = Field(regex=\"^[a-z]+$\")\ncode: str = Field(regex=\"^\\\\d+$\")\n")
	assert.Equal(t, 2, ruleCount(counts, "pydantic-pattern-kwarg"))
	assert.NotContains(t, out, "regex=")
	assert.Equal(t, 2, strings.Count(out, "pattern="))
}

func TestNormalizer_EngineBinding(t *testing.T) {
	out, counts := applyRule(t, "app/main.py",
		"from .database import get_db\nBase.metadata.create_all(bind=get_db().bind)\n")
	assert.Equal(t, 2, ruleCount(counts, "database-engine-binding"))
	assert.Contains(t, out, "from .database import get_db, engine")
	assert.Contains(t, out, "bind=engine")
	assert.NotContains(t, out, "get_db().bind")

	// Already importing engine: the import is left alone.
	out, counts = applyRule(t, "app/main.py",
		"from .database import get_db, engine\nBase.metadata.create_all(bind=get_db().bind)\n")
	assert.Equal(t, 1, ruleCount(counts, "database-engine-binding"))
	assert.NotContains(t, out, "engine, engine")
}

func TestNormalizer_RecursiveGetDB(t *testing.T) {
	content := "from app.database import get_db\n\ndef get_db():\n    return get_db()\n"

	out, counts := applyRule(t, "app/dependencies.py", content)
	assert.Equal(t, 1, ruleCount(counts, "recursive-get-db"))
	assert.Contains(t, out, "# get_db is re-exported from database module (auto-patched)")
	assert.NotContains(t, out, "return get_db()")

	// Same content in another file is left alone.
	out, counts = applyRule(t, "app/routers/tasks.py", content)
	assert.Zero(t, ruleCount(counts, "recursive-get-db"))
	assert.Equal(t, content, out)
}

func TestNormalizer_FieldValidator(t *testing.T) {
	out, counts := applyRule(t, "app/schemas.py",
		"from pydantic import validator\n")
	assert.Equal(t, 1, ruleCount(counts, "pydantic-field-validator"))
	assert.Contains(t, out, "from pydantic import field_validator")
}

func TestNormalizer_AsyncDefAwait(t *testing.T) {
	content := strings.Join([]string{
		"def fetch(db):",
		"    result = await db.execute(query)",
		"    return result",
		"",
		"def plain(db):",
		"    return db.query(Item).all()",
		"",
		"async def already(db):",
		"    return await db.get(Item, 1)",
		"",
	}, "\n")

	out, counts := applyRule(t, "app/crud.py", content)
	assert.Equal(t, 1, ruleCount(counts, "async-def-await"))
	assert.Contains(t, out, "async def fetch(db):")
	assert.Contains(t, out, "\ndef plain(db):")
	assert.Equal(t, 1, strings.Count(out, "async def already"))
}

func TestNormalizer_AsyncDefAwait_IndentedMethod(t *testing.T) {
	content := strings.Join([]string{
		"class Repo:",
		"    def load(self):",
		"        return await self.db.get(Item, 1)",
		"",
	}, "\n")

	out, counts := applyRule(t, "app/crud.py", content)
	assert.Equal(t, 1, ruleCount(counts, "async-def-await"))
	assert.Contains(t, out, "    async def load(self):")
}

func TestNormalizer_SwallowedException(t *testing.T) {
	content := strings.Join([]string{
		"def create_item(db, payload):",
		"    try:",
		"        db.commit()",
		"    except Exception as e:",
		"        print(f\"Error creating item: {e}\")",
		"        db.rollback()",
		"        return None",
		"",
	}, "\n")

	out, counts := applyRule(t, "app/crud.py", content)
	assert.Equal(t, 1, ruleCount(counts, "swallowed-exception"))
	assert.Contains(t, out, "    except Exception:\n        db.rollback()\n        raise")
	assert.NotContains(t, out, "return None")

	// Without the rollback line the block is left alone; only the full
	// print/rollback/return shape is rewritten.
	content = strings.Join([]string{
		"    except Exception as e:",
		"        print(f\"Error: {e}\")",
		"        return None",
	}, "\n")
	out, counts = applyRule(t, "app/crud.py", content)
	assert.Zero(t, ruleCount(counts, "swallowed-exception"))
	assert.Equal(t, content, out)
}

func TestNormalizer_StartupCreateDB(t *testing.T) {
	out, counts := applyRule(t, "app/main.py",
		"from fastapi import FastAPI\n\napp = FastAPI()\n")
	assert.Equal(t, 1, ruleCount(counts, "startup-create-db"))
	assert.Contains(t, out, "@app.on_event('startup')")
	assert.Contains(t, out, "from app.database import create_db")
	assert.Contains(t, out, "except ImportError:")

	// main.py that already wires create_db is untouched.
	content := "from fastapi import FastAPI\nfrom .database import create_db\n\napp = FastAPI()\ncreate_db()\n"
	out, counts = applyRule(t, "app/main.py", content)
	assert.Zero(t, ruleCount(counts, "startup-create-db"))
	assert.Equal(t, content, out)

	// Other files never get the startup block.
	_, counts = applyRule(t, "app/database.py", "app = FastAPI()\n")
	assert.Zero(t, ruleCount(counts, "startup-create-db"))
}

func TestNormalizer_SchemaToModelAdd(t *testing.T) {
	content := strings.Join([]string{
		"def create_task(db, payload):",
		"    db.add(payload)",
		"    db.commit()",
		"",
	}, "\n")

	out, counts := applyRule(t, "app/routers/tasks.py", content)
	assert.Equal(t, 1, ruleCount(counts, "schema-to-model-add"))
	assert.Contains(t, out, "if hasattr(payload, 'model_dump') and not hasattr(payload, '__tablename__'):")
	assert.Contains(t, out, "payload = _cls(**payload.model_dump())")
	assert.Contains(t, out, "    db.add(payload)")
}

func TestNormalizer_SyncDatabaseDriver(t *testing.T) {
	content := strings.Join([]string{
		"from sqlalchemy.ext.asyncio import create_async_engine",
		"from sqlalchemy.ext.asyncio import AsyncSession",
		"from sqlalchemy.ext.asyncio import async_sessionmaker",
		"",
		"engine = create_async_engine(\"sqlite+aiosqlite:///./app.db\")",
		"SessionLocal = async_sessionmaker(bind=engine, class_=AsyncSession)",
		"",
	}, "\n")

	out, counts := applyRule(t, "app/database.py", content)
	assert.Equal(t, 3, ruleCount(counts, "sync-database-driver"))
	assert.Contains(t, out, "from sqlalchemy import create_engine")
	assert.Contains(t, out, "from sqlmodel import Session")
	assert.Contains(t, out, "from sqlalchemy.orm import sessionmaker")
	assert.Contains(t, out, "create_engine(\"sqlite:///./app.db\")")
	assert.NotContains(t, out, "create_async_engine")
	assert.NotContains(t, out, "AsyncSession")
	assert.NotContains(t, out, "async_sessionmaker")
	assert.NotContains(t, out, "aiosqlite")
}

func TestNormalizer_SyncDatabaseDriver_SQLModelImport(t *testing.T) {
	out, counts := applyRule(t, "app/database.py",
		"from sqlmodel.ext.asyncio.session import AsyncSession\n")
	assert.Equal(t, 1, ruleCount(counts, "sync-database-driver"))
	assert.Contains(t, out, "from sqlmodel import Session")
	assert.NotContains(t, out, "AsyncSession")
}

func TestNormalizer_CleanFileUntouched(t *testing.T) {
	content := "from fastapi import APIRouter\n\nrouter = APIRouter()\n"
	out, counts := applyRule(t, "app/routers/tasks.py", content)
	assert.Empty(t, counts)
	assert.Equal(t, content, out)
}

func TestNormalizeDir(t *testing.T) {
	root := t.TempDir()
	appDir := filepath.Join(root, "app")
	require.NoError(t, os.MkdirAll(appDir, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(appDir, "schemas.py"),
		[]byte("name: str = Field(regex=\"^a\")\nfrom pydantic import validator\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(appDir, "models.py"),
		[]byte("code: str = Field(regex=\"^b\")\n"), 0o644))
	// Non-Python files are never rewritten.
	readme := "regex= is mentioned here\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte(readme), 0o644))

	counts, err := NewNormalizer().NormalizeDir(root)
	require.NoError(t, err)
	assert.Equal(t, 2, ruleCount(counts, "pydantic-pattern-kwarg"))
	assert.Equal(t, 1, ruleCount(counts, "pydantic-field-validator"))

	data, err := os.ReadFile(filepath.Join(appDir, "schemas.py"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "pattern=")
	assert.Contains(t, string(data), "field_validator")

	data, err = os.ReadFile(filepath.Join(root, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, readme, string(data))
}

func TestNormalizeDir_CleanTree(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "main.py"),
		[]byte("import os\n"), 0o644))

	counts, err := NewNormalizer().NormalizeDir(root)
	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestNormalizer_RuleOrderStable(t *testing.T) {
	content := "from pydantic import validator\nname: str = Field(regex=\"^a\")\n"
	_, counts := applyRule(t, "app/schemas.py", content)
	require.Len(t, counts, 2)
	assert.Equal(t, "pydantic-pattern-kwarg", counts[0].Rule)
	assert.Equal(t, "pydantic-field-validator", counts[1].Rule)
}
