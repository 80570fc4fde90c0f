package schemas

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
  "type": "object",
  "required": ["id"],
  "properties": {
    "id": {"type": "string"},
    "skills": {"type": "string"}
  },
  "additionalProperties": false
}`

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"id": "abc", "skills": "Go, SQL"}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_MissingRequired(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"skills": "Go"}`)

	require.Error(t, err)
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, err.Error(), "id")
}

func TestValidateJSONString_UnknownField(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"id": "abc", "unexpected": 1}`)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
}

func TestValidateJSONString_BrokenSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": [not json`, `{}`)

	require.Error(t, err)
	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestResolveSchemaPath_FindsCandidateSchema(t *testing.T) {
	// The repo schema sits two levels up from this package.
	path := ResolveSchemaPath(CandidateSchemaPath)

	require.NotEmpty(t, path)
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestResolveSchemaPath_Missing(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("schemas/does_not_exist.schema.json"))
}

func TestValidateCandidateOutput(t *testing.T) {
	schemaPath := ResolveSchemaPath(CandidateSchemaPath)
	require.NotEmpty(t, schemaPath)
	schema, err := os.ReadFile(schemaPath)
	require.NoError(t, err)

	candidateJSON := `{
  "id": "7d444840-9dc0-11d1-b245-5ffdce74fad2",
  "name": "Jane Doe",
  "email": "jane@example.com",
  "skills": "Go, Python",
  "work_experiences": [
    {"job_title": "Engineer", "company": "Acme", "start_date": "2020-01-01T00:00:00Z", "description": "Built things"}
  ],
  "educations": [
    {"institution": "State University", "degree": "BSc"}
  ]
}`

	assert.NoError(t, ValidateJSONString(string(schema), candidateJSON))

	missingCompany := `{
  "id": "7d444840-9dc0-11d1-b245-5ffdce74fad2",
  "work_experiences": [{"job_title": "Engineer"}],
  "educations": []
}`
	assert.Error(t, ValidateJSONString(string(schema), missingCompany))
}
