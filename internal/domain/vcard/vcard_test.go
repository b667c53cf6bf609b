package vcard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func acme() Contact {
	return Contact{
		BusinessName: "Acme Inc",
		PhoneNumber:  "555-1234",
		Email:        "a@acme.com",
		Address:      "1 Main St",
	}
}

func TestSerialize_RequiredFieldsOnly(t *testing.T) {
	out := Serialize(acme())

	expected := "BEGIN:VCARD\r\n" +
		"VERSION:3.0\r\n" +
		"FN:Acme Inc\r\n" +
		"ORG:Acme Inc\r\n" +
		"TEL;TYPE=work,voice:555-1234\r\n" +
		"EMAIL;TYPE=work:a@acme.com\r\n" +
		"ADR;TYPE=work:;;1 Main St\r\n" +
		"END:VCARD"
	assert.Equal(t, expected, out)
	assert.NotContains(t, out, "NOTE:")
	assert.NotContains(t, out, "URL:")
}

func TestSerialize_OptionalFieldsOrder(t *testing.T) {
	c := acme()
	c.BusinessDescription = "Great coffee"
	c.Website = "https://acme.example"

	lines := strings.Split(Serialize(c), "\r\n")

	require.Equal(t, []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:Acme Inc",
		"ORG:Acme Inc",
		"NOTE:Great coffee",
		"TEL;TYPE=work,voice:555-1234",
		"EMAIL;TYPE=work:a@acme.com",
		"ADR;TYPE=work:;;1 Main St",
		"URL:https://acme.example",
		"END:VCARD",
	}, lines)
}

func TestSerialize_Envelope(t *testing.T) {
	inputs := []Contact{
		{},
		acme(),
		{BusinessName: "Dup", BusinessDescription: "x", Website: "y"},
	}

	for _, in := range inputs {
		out := Serialize(in)
		assert.True(t, strings.HasPrefix(out, "BEGIN:VCARD\r\n"))
		assert.True(t, strings.HasSuffix(out, "\r\nEND:VCARD"))
		assert.Equal(t, 1, strings.Count(out, "VERSION:3.0"))
	}
}

func TestSerialize_EmptyRequiredFields(t *testing.T) {
	out := Serialize(Contact{})

	assert.Contains(t, out, "\r\nFN:\r\n")
	assert.Contains(t, out, "\r\nORG:\r\n")
	assert.Contains(t, out, "\r\nTEL;TYPE=work,voice:\r\n")
	assert.Contains(t, out, "\r\nEMAIL;TYPE=work:\r\n")
	assert.Contains(t, out, "\r\nADR;TYPE=work:;;\r\n")
}

func TestSerialize_Deterministic(t *testing.T) {
	c := acme()
	c.Website = "https://acme.example"

	assert.Equal(t, Serialize(c), Serialize(c))
}

func TestSerialize_DoesNotEscape(t *testing.T) {
	c := acme()
	c.Address = "1 Main St, Suite 2; Back"

	assert.Contains(t, Serialize(c), "ADR;TYPE=work:;;1 Main St, Suite 2; Back\r\n")
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Acme Inc", "Acme_Inc.vcf"},
		{"Acme   Coffee\tRoasters", "Acme_Coffee_Roasters.vcf"},
		{"Solo", "Solo.vcf"},
		{" padded ", "_padded_.vcf"},
		{"", "contact.vcf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FileName(tt.name))
		})
	}
}
