package render

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/forge/pkg/spec"
)

func renderSpec() *spec.Spec {
	return &spec.Spec{
		ProjectName: "blog-api",
		Description: "A blog backend.",
		SpecVersion: spec.SpecVersion,
		Database:    spec.DatabaseConfig{Type: spec.DatabaseKindPostgres, Version: spec.DatabaseVersion},
		Auth:        spec.AuthConfig{Enabled: true, Type: spec.AuthKindJWT, TokenExpiryMinutes: 30},
		Entities: []spec.Entity{
			{
				Name:      "Post",
				TableName: "posts",
				CRUD:      true,
				Fields: []spec.Field{
					{Name: "id", Type: spec.TypeUUID, PrimaryKey: true},
					{Name: "title", Type: spec.TypeString, Unique: true},
					{Name: "body", Type: spec.TypeText, Nullable: true},
					{Name: "published_at", Type: spec.TypeDatetime, Nullable: true},
				},
			},
			{
				Name:      "Category",
				TableName: "categories",
				CRUD:      true,
				Fields: []spec.Field{
					{Name: "id", Type: spec.TypeInteger, PrimaryKey: true},
					{Name: "label", Type: spec.TypeString},
				},
			},
		},
	}
}

func TestSingularize(t *testing.T) {
	cases := map[string]string{
		"categories": "category",
		"addresses":  "address",
		"statuses":   "status",
		"boxes":      "box",
		"products":   "product",
		"posts":      "post",
		"data":       "data",
		"glass":      "glass",
	}
	for plural, singular := range cases {
		assert.Equal(t, singular, Singularize(plural), "table %q", plural)
	}
}

func TestRenderLayout(t *testing.T) {
	files, err := Render(renderSpec())
	require.NoError(t, err)

	var got []string
	for name := range files {
		got = append(got, name)
	}
	sort.Strings(got)

	assert.Equal(t, []string{
		".env.example",
		".gitignore",
		"Dockerfile",
		"README.md",
		"app/__init__.py",
		"app/auth.py",
		"app/database.py",
		"app/main.py",
		"app/models.py",
		"app/routers/__init__.py",
		"app/routers/categories.py",
		"app/routers/posts.py",
		"app/schemas.py",
		"docker-compose.yml",
		"requirements.txt",
		"tests/test_smoke.py",
	}, got)
}

func TestRenderDeterministic(t *testing.T) {
	first, err := Render(renderSpec())
	require.NoError(t, err)
	second, err := Render(renderSpec())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderRejectsInvalidSpec(t *testing.T) {
	s := renderSpec()
	s.Entities = nil
	_, err := Render(s)
	assert.Error(t, err)
}

func TestRenderModels(t *testing.T) {
	files, err := Render(renderSpec())
	require.NoError(t, err)
	models := files["app/models.py"]

	assert.Contains(t, models, "import uuid\n")
	assert.Contains(t, models, "from sqlalchemy.dialects.postgresql import UUID\n")
	assert.Contains(t, models, "class Post(Base):")
	assert.Contains(t, models, `__tablename__ = "posts"`)
	assert.Contains(t, models, "id = Column(UUID(as_uuid=True), primary_key=True, default=uuid.uuid4)")
	assert.Contains(t, models, "title = Column(String(255), nullable=False, unique=True)")
	assert.Contains(t, models, "body = Column(Text, nullable=True)")
	assert.Contains(t, models, "published_at = Column(DateTime(timezone=True), nullable=True)")
	assert.Contains(t, models, "id = Column(Integer, primary_key=True, autoincrement=True)")
}

func TestRenderSchemas(t *testing.T) {
	files, err := Render(renderSpec())
	require.NoError(t, err)
	schemas := files["app/schemas.py"]

	assert.Contains(t, schemas, "class PostBase(BaseModel):")
	assert.Contains(t, schemas, "title: str\n")
	assert.Contains(t, schemas, "body: Optional[str] = None")
	assert.Contains(t, schemas, "published_at: Optional[datetime] = None")
	assert.Contains(t, schemas, "class PostUpdate(BaseModel):")
	assert.Contains(t, schemas, "title: Optional[str] = None")
	assert.Contains(t, schemas, "class PostOut(PostBase):")
	assert.Contains(t, schemas, "model_config = ConfigDict(from_attributes=True)")
	assert.Contains(t, schemas, "id: uuid.UUID")
	assert.Contains(t, schemas, "id: int")
}

func TestRenderRouter(t *testing.T) {
	files, err := Render(renderSpec())
	require.NoError(t, err)
	router := files["app/routers/posts.py"]

	assert.Contains(t, router, `prefix="/posts"`)
	assert.Contains(t, router, "dependencies=[Depends(get_current_user)]")
	assert.Contains(t, router, `@router.post("/", response_model=PostOut, status_code=status.HTTP_201_CREATED)`)
	assert.Contains(t, router, "def create_post(payload: PostCreate, db: Session = Depends(get_db)):")
	assert.Contains(t, router, `@router.get("/", response_model=list[PostOut])`)
	assert.Contains(t, router, "def read_post(item_id: uuid.UUID, db: Session = Depends(get_db)):")
	assert.Contains(t, router, `@router.delete("/{item_id}", status_code=status.HTTP_204_NO_CONTENT)`)
	assert.Contains(t, router, `detail="Post not found"`)

	// Integer PKs type the path parameter accordingly.
	categories := files["app/routers/categories.py"]
	assert.Contains(t, categories, "def read_category(item_id: int, db: Session = Depends(get_db)):")
	assert.NotContains(t, categories, "import uuid")
}

func TestRenderMain(t *testing.T) {
	files, err := Render(renderSpec())
	require.NoError(t, err)
	main := files["app/main.py"]

	assert.Contains(t, main, "from .routers import posts, categories")
	assert.Contains(t, main, "from . import auth")
	assert.Contains(t, main, `title="blog-api"`)
	assert.Contains(t, main, `description="A blog backend."`)
	assert.Contains(t, main, `@app.get("/health")`)
	assert.Contains(t, main, `return {"status": "ok"}`)
	assert.Contains(t, main, "app.include_router(auth.router)")
	assert.Contains(t, main, "app.include_router(posts.router)")
	assert.Contains(t, main, "app.include_router(categories.router)")
	assert.Contains(t, main, "Base.metadata.create_all(bind=engine)")
}

func TestRenderAuthModule(t *testing.T) {
	files, err := Render(renderSpec())
	require.NoError(t, err)
	auth := files["app/auth.py"]

	assert.Contains(t, auth, `__tablename__ = "user_accounts"`)
	assert.Contains(t, auth, "ACCESS_TOKEN_EXPIRY_MINUTES = 30")
	assert.Contains(t, auth, `@router.post("/register", response_model=UserOut, status_code=status.HTTP_201_CREATED)`)
	assert.Contains(t, auth, "OAuth2PasswordRequestForm = Depends()")
	assert.Contains(t, auth, `headers={"WWW-Authenticate": "Bearer"}`)
	assert.Contains(t, auth, "def get_current_user(")
}

func TestRenderWithoutAuth(t *testing.T) {
	s := renderSpec()
	s.Auth.Enabled = false
	files, err := Render(s)
	require.NoError(t, err)

	assert.NotContains(t, files, "app/auth.py")
	assert.NotContains(t, files["requirements.txt"], "PyJWT")
	assert.NotContains(t, files["docker-compose.yml"], "SECRET_KEY")
	assert.NotContains(t, files["app/main.py"], "auth")
	assert.NotContains(t, files["app/routers/posts.py"], "get_current_user")
	assert.Equal(t, "DATABASE_URL=postgresql://postgres:postgres@db:5432/blog_api\n", files[".env.example"])
}

func TestRenderSkipsUserEntityWhenAuthEnabled(t *testing.T) {
	s := renderSpec()
	s.Entities = append(s.Entities, spec.Entity{
		Name:      "User",
		TableName: "users",
		CRUD:      true,
		Fields: []spec.Field{
			{Name: "id", Type: spec.TypeUUID, PrimaryKey: true},
			{Name: "email", Type: spec.TypeString, Unique: true},
		},
	})

	files, err := Render(s)
	require.NoError(t, err)
	assert.NotContains(t, files, "app/routers/users.py")
	assert.NotContains(t, files["app/main.py"], "users.router")

	// Without auth the users router is rendered like any other.
	s.Auth.Enabled = false
	files, err = Render(s)
	require.NoError(t, err)
	assert.Contains(t, files, "app/routers/users.py")
}

func TestRenderSkipsNonCRUDEntities(t *testing.T) {
	s := renderSpec()
	s.Entities[1].CRUD = false

	files, err := Render(s)
	require.NoError(t, err)
	assert.NotContains(t, files, "app/routers/categories.py")
	// The model is still emitted.
	assert.Contains(t, files["app/models.py"], "class Category(Base):")
}

func TestRenderCompose(t *testing.T) {
	files, err := Render(renderSpec())
	require.NoError(t, err)
	compose := files["docker-compose.yml"]

	assert.Contains(t, compose, `- "8000:8000"`)
	assert.Contains(t, compose, "image: postgres:15")
	assert.Contains(t, compose, "POSTGRES_DB: blog_api")
	assert.Contains(t, compose, "DATABASE_URL: postgresql://postgres:postgres@db:5432/blog_api")
	assert.Contains(t, compose, "condition: service_healthy")
	assert.Contains(t, compose, "SECRET_KEY: change-me-in-production")
}

func TestRenderEnvExample(t *testing.T) {
	files, err := Render(renderSpec())
	require.NoError(t, err)
	assert.Equal(t,
		"DATABASE_URL=postgresql://postgres:postgres@db:5432/blog_api\nSECRET_KEY=change-me-in-production\n",
		files[".env.example"])
}

func TestRenderSmokeTests(t *testing.T) {
	files, err := Render(renderSpec())
	require.NoError(t, err)
	smoke := files["tests/test_smoke.py"]

	assert.Contains(t, smoke, "def test_health():")
	assert.Contains(t, smoke, `assert "/posts/" in paths`)
	assert.Contains(t, smoke, `assert "/auth/register" in paths`)
}
