package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

type swaggerDoc struct {
	Info struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		License     struct {
			Name string `json:"name"`
		} `json:"license"`
		Contact struct {
			Name  string `json:"name"`
			URL   string `json:"url"`
			Email string `json:"email"`
		} `json:"contact"`
	} `json:"info"`
	BasePath string `json:"basePath"`
	Tags     []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	} `json:"tags"`
	Paths map[string]map[string]struct {
		Tags []string `json:"tags"`
	} `json:"paths"`
}

func readDoc(t *testing.T) swaggerDoc {
	t.Helper()
	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var doc swaggerDoc
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return doc
}

func TestDocInfo(t *testing.T) {
	doc := readDoc(t)

	assert.Equal(t, "Invoicing System by Paweł Klimek", doc.Info.Title)
	assert.Equal(t, "Application to manage invoices", doc.Info.Description)
	assert.Equal(t, "No license", doc.Info.License.Name)
	assert.Equal(t, "Paweł Klimek", doc.Info.Contact.Name)
	assert.Equal(t, "https://github.com/pawkli95", doc.Info.Contact.URL)
	assert.Equal(t, "pawkli95@gmail.com", doc.Info.Contact.Email)
	assert.Equal(t, "/api", doc.BasePath)
}

func TestDocTags(t *testing.T) {
	doc := readDoc(t)

	expected := [][2]string{
		{"invoice-controller", "Controller used to manage invoices"},
		{"tax-calculator-controller", "Controller used to calculate taxes"},
		{"company-controller", "Controller used to manage companies"},
		{"auth-controller", "Controller used to authenticate users"},
		{"user-controller", "Controller used to manage users"},
	}
	require.Len(t, doc.Tags, len(expected))
	for i, tag := range doc.Tags {
		assert.Equal(t, expected[i][0], tag.Name)
		assert.Equal(t, expected[i][1], tag.Description)
	}
}

func TestEveryOperationIsTagged(t *testing.T) {
	doc := readDoc(t)

	known := map[string]bool{}
	for _, tag := range doc.Tags {
		known[tag.Name] = true
	}

	assert.Contains(t, doc.Paths, "/tax/{taxId}")
	assert.Contains(t, doc.Paths, "/invoices/{id}/pdf")
	for path, ops := range doc.Paths {
		for method, op := range ops {
			require.Len(t, op.Tags, 1, "%s %s", method, path)
			assert.True(t, known[op.Tags[0]], "%s %s has unknown tag %s", method, path, op.Tags[0])
		}
	}
}
