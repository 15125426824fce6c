package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRoute(t *testing.T) {
	tests := []struct {
		input string
		want  Route
		ok    bool
	}{
		{"FIELD_LOOKUP", RouteFieldLookup, true},
		{"similarity", RouteSimilarity, true},
		{"  Aggregate  ", RouteAggregate, true},
		{"SEMANTIC", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseRoute(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestNormalizeDocumentType(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"IDENTITY_DOCUMENT", DocTypeIdentity},
		{"identity-document", DocTypeIdentity},
		{"Aadhaar Card", DocTypeIdentity},
		{"PAN Card", DocTypeIdentity},
		{"Class 10 Marksheet", DocTypeEducation},
		{"Degree Certificate", DocTypeEducation},
		{"Electricity Bill", DocTypeFinancial},
		{"Income Tax Return", DocTypeGovernment},
		{"Bank Statement", DocTypeBank},
		{"Salary Slip", DocTypeSalary},
		{"Rental Agreement", DocTypeLegal},
		{"Insurance Policy", DocTypeLegal},
		{"Form 16", DocTypeGovernment},
		{"Lab Report", DocTypeMedical},
		{"Shopping List", DocTypeOther},
		{"", DocTypeOther},
		{"   ", DocTypeOther},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeDocumentType(tt.input), "input %q", tt.input)
	}
}
