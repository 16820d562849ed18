package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/forgeworks/forge/pkg/spec"
)

func renderRequirements(s *spec.Spec) string {
	deps := []string{
		"fastapi>=0.110",
		"httpx>=0.26",
		"psycopg2-binary>=2.9",
		"pydantic>=2.5",
		"pytest>=8.0",
		"sqlalchemy>=2.0",
		"uvicorn[standard]>=0.27",
	}
	if s.Auth.Enabled {
		deps = append(deps, "PyJWT>=2.8", "bcrypt>=4.0", "python-multipart>=0.0.7")
	}
	sort.Strings(deps)
	return strings.Join(deps, "\n") + "\n"
}

func renderDockerfile() string {
	return `FROM python:3.11-slim

WORKDIR /code

COPY requirements.txt .
RUN pip install --no-cache-dir -r requirements.txt

COPY . .

EXPOSE 8000

CMD ["uvicorn", "app.main:app", "--host", "0.0.0.0", "--port", "8000"]
`
}

func renderCompose(s *spec.Spec) string {
	var b strings.Builder
	b.WriteString("services:\n")
	b.WriteString("  app:\n")
	b.WriteString("    build: .\n")
	b.WriteString("    ports:\n      - \"8000:8000\"\n")
	b.WriteString("    environment:\n")
	fmt.Fprintf(&b, "      DATABASE_URL: postgresql://postgres:postgres@db:5432/%s\n", dbName(s))
	if s.Auth.Enabled {
		b.WriteString("      SECRET_KEY: change-me-in-production\n")
	}
	b.WriteString("    depends_on:\n")
	b.WriteString("      db:\n")
	b.WriteString("        condition: service_healthy\n")
	b.WriteString("  db:\n")
	fmt.Fprintf(&b, "    image: postgres:%s\n", s.Database.Version)
	b.WriteString("    environment:\n")
	b.WriteString("      POSTGRES_USER: postgres\n")
	b.WriteString("      POSTGRES_PASSWORD: postgres\n")
	fmt.Fprintf(&b, "      POSTGRES_DB: %s\n", dbName(s))
	b.WriteString("    healthcheck:\n")
	b.WriteString("      test: [\"CMD-SHELL\", \"pg_isready -U postgres\"]\n")
	b.WriteString("      interval: 2s\n")
	b.WriteString("      timeout: 3s\n")
	b.WriteString("      retries: 30\n")
	b.WriteString("    volumes:\n")
	b.WriteString("      - postgres_data:/var/lib/postgresql/data\n")
	b.WriteString("\nvolumes:\n  postgres_data:\n")
	return b.String()
}

func renderEnvExample(s *spec.Spec) string {
	lines := []string{
		fmt.Sprintf("DATABASE_URL=postgresql://postgres:postgres@db:5432/%s", dbName(s)),
	}
	if s.Auth.Enabled {
		lines = append(lines, "SECRET_KEY=change-me-in-production")
	}
	return strings.Join(lines, "\n") + "\n"
}

func renderGitignore() string {
	return `__pycache__/
*.pyc
.env
.venv/
venv/
.pytest_cache/
`
}

func renderReadme(s *spec.Spec) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", s.ProjectName)
	if s.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", s.Description)
	}
	b.WriteString("## Requirements\n\n- Docker and Docker Compose\n\n")
	b.WriteString("## Quick Start\n\n")
	b.WriteString("```bash\ndocker compose up --build\n```\n\n")
	b.WriteString("The API serves on http://localhost:8000. Interactive docs live at\nhttp://localhost:8000/docs.\n\n")
	b.WriteString("## Endpoints\n\n")
	b.WriteString("- `GET /health`\n")
	if s.Auth.Enabled {
		b.WriteString("- `POST /auth/register`, `POST /auth/login` (OAuth2 password flow)\n")
	}
	for _, e := range s.Entities {
		if !routedEntity(s, &e) {
			continue
		}
		fmt.Fprintf(&b, "- `/%s/` CRUD for %s\n", e.TableName, e.Name)
	}
	b.WriteString("\n## Smoke Tests\n\n")
	b.WriteString("```bash\ndocker compose exec app python -m pytest tests/ -q\n```\n")
	return b.String()
}

func renderSmokeTests(s *spec.Spec) string {
	var b strings.Builder
	b.WriteString("\"\"\"Smoke tests that run inside the app container against the live server.\"\"\"\n\n")
	b.WriteString("import httpx\n\n")
	b.WriteString("BASE_URL = \"http://localhost:8000\"\n")

	b.WriteString("\n\ndef test_health():\n")
	b.WriteString("    r = httpx.get(f\"{BASE_URL}/health\", timeout=10)\n")
	b.WriteString("    assert r.status_code == 200\n")
	b.WriteString("    assert r.json()[\"status\"] == \"ok\"\n")

	b.WriteString("\n\ndef test_docs_available():\n")
	b.WriteString("    r = httpx.get(f\"{BASE_URL}/docs\", timeout=10)\n")
	b.WriteString("    assert r.status_code == 200\n")

	b.WriteString("\n\ndef test_openapi_routes():\n")
	b.WriteString("    r = httpx.get(f\"{BASE_URL}/openapi.json\", timeout=10)\n")
	b.WriteString("    assert r.status_code == 200\n")
	b.WriteString("    paths = r.json()[\"paths\"]\n")
	b.WriteString("    assert \"/health\" in paths\n")
	if s.Auth.Enabled {
		b.WriteString("    assert \"/auth/register\" in paths\n")
		b.WriteString("    assert \"/auth/login\" in paths\n")
	}
	for _, e := range s.Entities {
		if !routedEntity(s, &e) {
			continue
		}
		fmt.Fprintf(&b, "    assert \"/%s/\" in paths\n", e.TableName)
	}
	return b.String()
}
