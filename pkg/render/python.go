package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/forgeworks/forge/pkg/spec"
)

func renderDatabase(s *spec.Spec) string {
	var b strings.Builder
	b.WriteString("import os\n\n")
	b.WriteString("from sqlalchemy import create_engine\n")
	b.WriteString("from sqlalchemy.orm import DeclarativeBase, sessionmaker\n\n")
	fmt.Fprintf(&b, "DATABASE_URL = os.getenv(\n    \"DATABASE_URL\",\n    \"postgresql://postgres:postgres@db:5432/%s\",\n)\n\n", dbName(s))
	b.WriteString("engine = create_engine(DATABASE_URL, pool_pre_ping=True)\n")
	b.WriteString("SessionLocal = sessionmaker(bind=engine, autocommit=False, autoflush=False)\n\n\n")
	b.WriteString("class Base(DeclarativeBase):\n    pass\n\n\n")
	b.WriteString("def get_db():\n")
	b.WriteString("    db = SessionLocal()\n")
	b.WriteString("    try:\n        yield db\n    finally:\n        db.close()\n")
	return b.String()
}

func renderModels(s *spec.Spec) string {
	saTypes := map[string]bool{}
	needsUUIDDialect := false
	needsUUIDModule := false
	for _, e := range s.Entities {
		for _, f := range e.Fields {
			switch f.Type {
			case spec.TypeUUID:
				needsUUIDDialect = true
				if f.PrimaryKey {
					needsUUIDModule = true
				}
			case spec.TypeInteger:
				saTypes["Integer"] = true
			case spec.TypeFloat:
				saTypes["Float"] = true
			case spec.TypeBoolean:
				saTypes["Boolean"] = true
			case spec.TypeDatetime:
				saTypes["DateTime"] = true
			case spec.TypeText:
				saTypes["Text"] = true
			default:
				saTypes["String"] = true
			}
		}
	}

	var b strings.Builder
	if needsUUIDModule {
		b.WriteString("import uuid\n\n")
	}
	imports := []string{"Column"}
	for name := range saTypes {
		imports = append(imports, name)
	}
	sort.Strings(imports)
	fmt.Fprintf(&b, "from sqlalchemy import %s\n", strings.Join(imports, ", "))
	if needsUUIDDialect {
		b.WriteString("from sqlalchemy.dialects.postgresql import UUID\n")
	}
	b.WriteString("\nfrom .database import Base\n")

	for _, e := range s.Entities {
		fmt.Fprintf(&b, "\n\nclass %s(Base):\n", e.Name)
		fmt.Fprintf(&b, "    __tablename__ = %q\n\n", e.TableName)
		for _, f := range e.Fields {
			fmt.Fprintf(&b, "    %s = Column(%s)\n", f.Name, columnArgs(&f))
		}
	}
	b.WriteString("\n")
	return b.String()
}

func columnArgs(f *spec.Field) string {
	args := []string{columnType(f.Type)}
	if f.PrimaryKey {
		args = append(args, "primary_key=True")
		switch f.Type {
		case spec.TypeUUID:
			args = append(args, "default=uuid.uuid4")
		case spec.TypeInteger:
			args = append(args, "autoincrement=True")
		}
		return strings.Join(args, ", ")
	}
	args = append(args, fmt.Sprintf("nullable=%s", pyBool(f.Nullable)))
	if f.Unique {
		args = append(args, "unique=True")
	}
	return strings.Join(args, ", ")
}

func renderSchemas(s *spec.Spec) string {
	needsUUID, needsDatetime, needsOptional := false, false, false
	for _, e := range s.Entities {
		for _, f := range e.Fields {
			if f.Type == spec.TypeUUID {
				needsUUID = true
			}
			if f.Type == spec.TypeDatetime {
				needsDatetime = true
			}
			if !f.PrimaryKey {
				needsOptional = true
			}
		}
	}

	var b strings.Builder
	if needsUUID {
		b.WriteString("import uuid\n")
	}
	if needsDatetime {
		b.WriteString("from datetime import datetime\n")
	}
	if needsOptional {
		b.WriteString("from typing import Optional\n")
	}
	if needsUUID || needsDatetime || needsOptional {
		b.WriteString("\n")
	}
	b.WriteString("from pydantic import BaseModel, ConfigDict\n")

	for _, e := range s.Entities {
		pk := e.PrimaryKey()
		var rest []spec.Field
		for _, f := range e.Fields {
			if !f.PrimaryKey {
				rest = append(rest, f)
			}
		}

		fmt.Fprintf(&b, "\n\nclass %sBase(BaseModel):\n", e.Name)
		if len(rest) == 0 {
			b.WriteString("    pass\n")
		}
		for _, f := range rest {
			if f.Nullable {
				fmt.Fprintf(&b, "    %s: Optional[%s] = None\n", f.Name, pythonType(f.Type))
			} else {
				fmt.Fprintf(&b, "    %s: %s\n", f.Name, pythonType(f.Type))
			}
		}

		fmt.Fprintf(&b, "\n\nclass %sCreate(%sBase):\n    pass\n", e.Name, e.Name)

		fmt.Fprintf(&b, "\n\nclass %sUpdate(BaseModel):\n", e.Name)
		if len(rest) == 0 {
			b.WriteString("    pass\n")
		}
		for _, f := range rest {
			fmt.Fprintf(&b, "    %s: Optional[%s] = None\n", f.Name, pythonType(f.Type))
		}

		fmt.Fprintf(&b, "\n\nclass %sOut(%sBase):\n", e.Name, e.Name)
		b.WriteString("    model_config = ConfigDict(from_attributes=True)\n\n")
		fmt.Fprintf(&b, "    %s: %s\n", pk.Name, pythonType(pk.Type))
	}
	return b.String()
}

func renderRouter(s *spec.Spec, e *spec.Entity) string {
	singular := Singularize(e.TableName)
	pk := e.PrimaryKey()
	pkType := pythonType(pk.Type)

	var b strings.Builder
	if pk.Type == spec.TypeUUID {
		b.WriteString("import uuid\n\n")
	}
	b.WriteString("from fastapi import APIRouter, Depends, HTTPException, status\n")
	b.WriteString("from sqlalchemy.orm import Session\n\n")
	if s.Auth.Enabled {
		b.WriteString("from ..auth import get_current_user\n")
	}
	b.WriteString("from ..database import get_db\n")
	fmt.Fprintf(&b, "from ..models import %s\n", e.Name)
	fmt.Fprintf(&b, "from ..schemas import %sCreate, %sOut, %sUpdate\n\n", e.Name, e.Name, e.Name)

	b.WriteString("router = APIRouter(\n")
	fmt.Fprintf(&b, "    prefix=\"/%s\",\n", e.TableName)
	fmt.Fprintf(&b, "    tags=[%q],\n", e.TableName)
	if s.Auth.Enabled {
		b.WriteString("    dependencies=[Depends(get_current_user)],\n")
	}
	b.WriteString(")\n")

	notFound := fmt.Sprintf("raise HTTPException(status_code=status.HTTP_404_NOT_FOUND, detail=%q)", e.Name+" not found")

	fmt.Fprintf(&b, "\n\n@router.post(\"/\", response_model=%sOut, status_code=status.HTTP_201_CREATED)\n", e.Name)
	fmt.Fprintf(&b, "def create_%s(payload: %sCreate, db: Session = Depends(get_db)):\n", singular, e.Name)
	fmt.Fprintf(&b, "    obj = %s(**payload.model_dump(exclude_unset=True))\n", e.Name)
	b.WriteString("    db.add(obj)\n    db.commit()\n    db.refresh(obj)\n    return obj\n")

	fmt.Fprintf(&b, "\n\n@router.get(\"/\", response_model=list[%sOut])\n", e.Name)
	fmt.Fprintf(&b, "def list_%s(db: Session = Depends(get_db)):\n", e.TableName)
	fmt.Fprintf(&b, "    return db.query(%s).all()\n", e.Name)

	fmt.Fprintf(&b, "\n\n@router.get(\"/{item_id}\", response_model=%sOut)\n", e.Name)
	fmt.Fprintf(&b, "def read_%s(item_id: %s, db: Session = Depends(get_db)):\n", singular, pkType)
	fmt.Fprintf(&b, "    obj = db.get(%s, item_id)\n", e.Name)
	fmt.Fprintf(&b, "    if obj is None:\n        %s\n", notFound)
	b.WriteString("    return obj\n")

	fmt.Fprintf(&b, "\n\n@router.put(\"/{item_id}\", response_model=%sOut)\n", e.Name)
	fmt.Fprintf(&b, "def update_%s(item_id: %s, payload: %sUpdate, db: Session = Depends(get_db)):\n", singular, pkType, e.Name)
	fmt.Fprintf(&b, "    obj = db.get(%s, item_id)\n", e.Name)
	fmt.Fprintf(&b, "    if obj is None:\n        %s\n", notFound)
	b.WriteString("    for field, value in payload.model_dump(exclude_unset=True).items():\n")
	b.WriteString("        setattr(obj, field, value)\n")
	b.WriteString("    db.commit()\n    db.refresh(obj)\n    return obj\n")

	b.WriteString("\n\n@router.delete(\"/{item_id}\", status_code=status.HTTP_204_NO_CONTENT)\n")
	fmt.Fprintf(&b, "def delete_%s(item_id: %s, db: Session = Depends(get_db)):\n", singular, pkType)
	fmt.Fprintf(&b, "    obj = db.get(%s, item_id)\n", e.Name)
	fmt.Fprintf(&b, "    if obj is None:\n        %s\n", notFound)
	b.WriteString("    db.delete(obj)\n    db.commit()\n")
	return b.String()
}

func renderAuth(s *spec.Spec) string {
	var b strings.Builder
	b.WriteString("import os\nimport uuid\n")
	b.WriteString("from datetime import datetime, timedelta, timezone\n\n")
	b.WriteString("import bcrypt\nimport jwt\n")
	b.WriteString("from fastapi import APIRouter, Depends, HTTPException, status\n")
	b.WriteString("from fastapi.security import OAuth2PasswordBearer, OAuth2PasswordRequestForm\n")
	b.WriteString("from pydantic import BaseModel, ConfigDict\n")
	b.WriteString("from sqlalchemy import Column, String\n")
	b.WriteString("from sqlalchemy.dialects.postgresql import UUID\n")
	b.WriteString("from sqlalchemy.orm import Session\n\n")
	b.WriteString("from .database import Base, get_db\n\n")
	b.WriteString("SECRET_KEY = os.getenv(\"SECRET_KEY\", \"change-me-in-production\")\n")
	b.WriteString("ALGORITHM = \"HS256\"\n")
	fmt.Fprintf(&b, "ACCESS_TOKEN_EXPIRY_MINUTES = %d\n\n", s.Auth.TokenExpiryMinutes)
	b.WriteString("router = APIRouter(prefix=\"/auth\", tags=[\"auth\"])\n")
	b.WriteString("oauth2_scheme = OAuth2PasswordBearer(tokenUrl=\"/auth/login\")\n")

	fmt.Fprintf(&b, "\n\nclass UserAccount(Base):\n    __tablename__ = %q\n\n", spec.AuthUserTable)
	b.WriteString("    id = Column(UUID(as_uuid=True), primary_key=True, default=uuid.uuid4)\n")
	b.WriteString("    email = Column(String(255), unique=True, nullable=False, index=True)\n")
	b.WriteString("    password_hash = Column(String(255), nullable=False)\n")

	b.WriteString("\n\nclass RegisterRequest(BaseModel):\n    email: str\n    password: str\n")
	b.WriteString("\n\nclass UserOut(BaseModel):\n")
	b.WriteString("    model_config = ConfigDict(from_attributes=True)\n\n")
	b.WriteString("    id: uuid.UUID\n    email: str\n")
	b.WriteString("\n\nclass TokenResponse(BaseModel):\n")
	b.WriteString("    access_token: str\n    token_type: str = \"bearer\"\n")

	b.WriteString("\n\ndef hash_password(password: str) -> str:\n")
	b.WriteString("    return bcrypt.hashpw(password.encode(), bcrypt.gensalt()).decode()\n")
	b.WriteString("\n\ndef verify_password(password: str, password_hash: str) -> bool:\n")
	b.WriteString("    return bcrypt.checkpw(password.encode(), password_hash.encode())\n")

	b.WriteString("\n\ndef create_access_token(user_id: str) -> str:\n")
	b.WriteString("    expires = datetime.now(timezone.utc) + timedelta(minutes=ACCESS_TOKEN_EXPIRY_MINUTES)\n")
	b.WriteString("    return jwt.encode({\"sub\": user_id, \"exp\": expires}, SECRET_KEY, algorithm=ALGORITHM)\n")

	b.WriteString("\n\n@router.post(\"/register\", response_model=UserOut, status_code=status.HTTP_201_CREATED)\n")
	b.WriteString("def register(payload: RegisterRequest, db: Session = Depends(get_db)):\n")
	b.WriteString("    existing = db.query(UserAccount).filter(UserAccount.email == payload.email).first()\n")
	b.WriteString("    if existing is not None:\n")
	b.WriteString("        raise HTTPException(status_code=status.HTTP_409_CONFLICT, detail=\"Email already registered\")\n")
	b.WriteString("    user = UserAccount(email=payload.email, password_hash=hash_password(payload.password))\n")
	b.WriteString("    db.add(user)\n    db.commit()\n    db.refresh(user)\n    return user\n")

	b.WriteString("\n\n@router.post(\"/login\", response_model=TokenResponse)\n")
	b.WriteString("def login(form: OAuth2PasswordRequestForm = Depends(), db: Session = Depends(get_db)):\n")
	b.WriteString("    user = db.query(UserAccount).filter(UserAccount.email == form.username).first()\n")
	b.WriteString("    if user is None or not verify_password(form.password, user.password_hash):\n")
	b.WriteString("        raise HTTPException(\n")
	b.WriteString("            status_code=status.HTTP_401_UNAUTHORIZED,\n")
	b.WriteString("            detail=\"Invalid email or password\",\n")
	b.WriteString("            headers={\"WWW-Authenticate\": \"Bearer\"},\n")
	b.WriteString("        )\n")
	b.WriteString("    return TokenResponse(access_token=create_access_token(str(user.id)))\n")

	b.WriteString("\n\ndef get_current_user(token: str = Depends(oauth2_scheme), db: Session = Depends(get_db)) -> UserAccount:\n")
	b.WriteString("    try:\n")
	b.WriteString("        claims = jwt.decode(token, SECRET_KEY, algorithms=[ALGORITHM])\n")
	b.WriteString("        user_id = uuid.UUID(claims[\"sub\"])\n")
	b.WriteString("    except (jwt.PyJWTError, KeyError, ValueError):\n")
	b.WriteString("        raise HTTPException(\n")
	b.WriteString("            status_code=status.HTTP_401_UNAUTHORIZED,\n")
	b.WriteString("            detail=\"Invalid or expired token\",\n")
	b.WriteString("            headers={\"WWW-Authenticate\": \"Bearer\"},\n")
	b.WriteString("        )\n")
	b.WriteString("    user = db.get(UserAccount, user_id)\n")
	b.WriteString("    if user is None:\n")
	b.WriteString("        raise HTTPException(status_code=status.HTTP_401_UNAUTHORIZED, detail=\"Invalid or expired token\")\n")
	b.WriteString("    return user\n")
	return b.String()
}

func renderMain(s *spec.Spec) string {
	var routed []spec.Entity
	for _, e := range s.Entities {
		if routedEntity(s, &e) {
			routed = append(routed, e)
		}
	}

	var b strings.Builder
	b.WriteString("import time\nfrom contextlib import asynccontextmanager\n\n")
	b.WriteString("from fastapi import FastAPI\n")
	b.WriteString("from sqlalchemy.exc import OperationalError\n\n")
	if s.Auth.Enabled {
		b.WriteString("from . import auth\n")
	}
	b.WriteString("from . import models  # noqa: F401\n")
	b.WriteString("from .database import Base, engine\n")
	if len(routed) > 0 {
		names := make([]string, len(routed))
		for i, e := range routed {
			names[i] = e.TableName
		}
		fmt.Fprintf(&b, "from .routers import %s\n", strings.Join(names, ", "))
	}

	b.WriteString("\n\n@asynccontextmanager\nasync def lifespan(app: FastAPI):\n")
	b.WriteString("    # The database container may still be starting up.\n")
	b.WriteString("    for _ in range(15):\n")
	b.WriteString("        try:\n")
	b.WriteString("            Base.metadata.create_all(bind=engine)\n")
	b.WriteString("            break\n")
	b.WriteString("        except OperationalError:\n")
	b.WriteString("            time.sleep(2)\n")
	b.WriteString("    yield\n")

	b.WriteString("\n\napp = FastAPI(\n")
	fmt.Fprintf(&b, "    title=%q,\n", s.ProjectName)
	if s.Description != "" {
		fmt.Fprintf(&b, "    description=%q,\n", s.Description)
	}
	b.WriteString("    lifespan=lifespan,\n)\n")

	b.WriteString("\n\n@app.get(\"/health\")\ndef health():\n    return {\"status\": \"ok\"}\n")

	b.WriteString("\n\n")
	if s.Auth.Enabled {
		b.WriteString("app.include_router(auth.router)\n")
	}
	for _, e := range routed {
		fmt.Fprintf(&b, "app.include_router(%s.router)\n", e.TableName)
	}
	return b.String()
}

func pyBool(v bool) string {
	if v {
		return "True"
	}
	return "False"
}
