package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectionNameForOrg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Acme Inc", "org_acme_inc"},
		{"already lowercase", "acme", "org_acme"},
		{"punctuation runs collapse", "Acme,  Inc!!", "org_acme_inc"},
		{"leading and trailing junk", "  --Acme--  ", "org_acme"},
		{"digits kept", "Acme 2000", "org_acme_2000"},
		{"unicode treated as separator", "Café Corp", "org_caf_corp"},
		{"empty", "", "org_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CollectionNameForOrg(tt.in))
		})
	}
}

func TestCollectionNameDeterministicAndWellFormed(t *testing.T) {
	valid := regexp.MustCompile(`^org_[a-z0-9_]*$`)

	inputs := []string{"Acme Inc", "A B C", "weird---name", "MiXeD CaSe 42"}
	for _, in := range inputs {
		first := CollectionNameForOrg(in)
		second := CollectionNameForOrg(in)
		assert.Equal(t, first, second, "must be deterministic for %q", in)
		assert.Regexp(t, valid, first)
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"Acme Inc", "  spaces  ", "UPPER", "a--b__c", "42!"}
	for _, in := range inputs {
		once := slugify(in)
		assert.Equal(t, once, slugify(once), "re-slugging %q", in)
	}
}
