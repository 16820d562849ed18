// Package spec defines the canonical backend specification: the validated
// intermediate representation between prompt interpretation and code
// generation. Every generated project flows through a Spec instance.
package spec

import (
	"encoding/json"
	"fmt"
)

// SpecVersion is the current schema-evolution marker. Specs carrying a
// different version are rejected by Validate.
const SpecVersion = "1.0"

// Allowed field types. The renderer maps each to a SQLAlchemy column type,
// so the whitelist is closed.
const (
	TypeString   = "string"
	TypeInteger  = "integer"
	TypeFloat    = "float"
	TypeBoolean  = "boolean"
	TypeDatetime = "datetime"
	TypeUUID     = "uuid"
	TypeText     = "text"
)

// AllowedFieldTypes is the closed set of Field.Type values.
var AllowedFieldTypes = map[string]bool{
	TypeString:   true,
	TypeInteger:  true,
	TypeFloat:    true,
	TypeBoolean:  true,
	TypeDatetime: true,
	TypeUUID:     true,
	TypeText:     true,
}

const (
	// DatabaseKindPostgres is the only database the renderer targets.
	DatabaseKindPostgres = "postgres"
	// DatabaseVersion is the pinned postgres major version.
	DatabaseVersion = "15"
	// AuthKindJWT is the only supported auth mechanism.
	AuthKindJWT = "jwt"
	// AuthUserTable is the table name the built-in auth subsystem owns.
	// No entity may claim it while auth is enabled.
	AuthUserTable = "user_accounts"
	// DefaultTokenExpiryMinutes applies when a spec omits the expiry.
	DefaultTokenExpiryMinutes = 30
)

// Spec is the root specification document.
type Spec struct {
	ProjectName string         `json:"project_name"`
	Description string         `json:"description,omitempty"`
	SpecVersion string         `json:"spec_version"`
	Database    DatabaseConfig `json:"database"`
	Auth        AuthConfig     `json:"auth"`
	Entities    []Entity       `json:"entities"`
}

// UnmarshalJSON seeds auth with its enabled-by-default state so a spec
// that omits the auth block entirely still gets authentication.
func (s *Spec) UnmarshalJSON(data []byte) error {
	type alias Spec
	aux := alias{Auth: AuthConfig{Enabled: true}}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*s = Spec(aux)
	return nil
}

// DatabaseConfig pins the target database. Only postgres 15 is rendered.
type DatabaseConfig struct {
	Type    string `json:"type"`
	Version string `json:"version"`
}

// AuthConfig describes the generated app's built-in authentication. When
// enabled, the renderer emits register/login endpoints backed by the
// reserved AuthUserTable.
type AuthConfig struct {
	Enabled            bool   `json:"enabled"`
	Type               string `json:"type"`
	TokenExpiryMinutes int    `json:"access_token_expiry_minutes"`
}

// UnmarshalJSON applies the enabled-by-default rule: auth is on unless the
// spec explicitly turns it off.
func (a *AuthConfig) UnmarshalJSON(data []byte) error {
	type alias AuthConfig
	aux := alias{Enabled: true}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*a = AuthConfig(aux)
	return nil
}

// Entity is one database model plus its generated endpoints.
type Entity struct {
	Name      string  `json:"name"`
	TableName string  `json:"table_name"`
	Fields    []Field `json:"fields"`
	CRUD      bool    `json:"crud"`
}

// UnmarshalJSON defaults crud to true when the key is absent.
func (e *Entity) UnmarshalJSON(data []byte) error {
	type alias Entity
	aux := alias{CRUD: true}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*e = Entity(aux)
	return nil
}

// PrimaryKey returns the entity's primary-key field, or nil when the
// entity has none (a state Validate rejects).
func (e *Entity) PrimaryKey() *Field {
	for i := range e.Fields {
		if e.Fields[i].PrimaryKey {
			return &e.Fields[i]
		}
	}
	return nil
}

// Field is one column/attribute of an entity.
type Field struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	PrimaryKey bool   `json:"primary_key"`
	Nullable   bool   `json:"nullable"`
	Unique     bool   `json:"unique"`
}

// UnmarshalJSON defaults nullable to true when the key is absent, matching
// the column default the renderer assumes.
func (f *Field) UnmarshalJSON(data []byte) error {
	type alias Field
	aux := alias{Nullable: true}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*f = Field(aux)
	return nil
}

// ToJSON serializes the spec for persistence in a project's artifact slot.
func (s *Spec) ToJSON() (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("marshaling spec: %w", err)
	}
	return string(b), nil
}

// FromJSON deserializes a persisted spec artifact.
func FromJSON(data string) (*Spec, error) {
	var s Spec
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, fmt.Errorf("unmarshaling spec: %w", err)
	}
	return &s, nil
}
