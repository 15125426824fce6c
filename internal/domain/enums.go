package domain

import "strings"

// FileType represents the allowed file types for upload.
type FileType string

const (
	FileTypePDF FileType = "pdf"
	FileTypeJPG FileType = "jpg"
	FileTypePNG FileType = "png"
)

// AllowedFileTypes maps FileType to its MIME content type.
var AllowedFileTypes = map[FileType]string{
	FileTypePDF: "application/pdf",
	FileTypeJPG: "image/jpeg",
	FileTypePNG: "image/png",
}

// AllowedContentTypes maps MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{
	"application/pdf": FileTypePDF,
	"image/jpeg":      FileTypeJPG,
	"image/png":       FileTypePNG,
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf":  FileTypePDF,
	"jpg":  FileTypeJPG,
	"jpeg": FileTypeJPG,
	"png":  FileTypePNG,
}

// ProcessingStatus represents the lifecycle of a document in the pipeline.
type ProcessingStatus string

const (
	ProcessingStatusUploaded   ProcessingStatus = "UPLOADED"
	ProcessingStatusQueued     ProcessingStatus = "QUEUED"
	ProcessingStatusProcessing ProcessingStatus = "PROCESSING"
	ProcessingStatusCompleted  ProcessingStatus = "COMPLETED"
	ProcessingStatusFailed     ProcessingStatus = "FAILED"
	ProcessingStatusArchived   ProcessingStatus = "ARCHIVED"
)

// FieldType categorizes an extracted metadata value.
type FieldType string

const (
	FieldTypePerson       FieldType = "PERSON"
	FieldTypeDate         FieldType = "DATE"
	FieldTypeIDNumber     FieldType = "ID_NUMBER"
	FieldTypeAmount       FieldType = "AMOUNT"
	FieldTypeOrganization FieldType = "ORGANIZATION"
	FieldTypeLocation     FieldType = "LOCATION"
	FieldTypeText         FieldType = "TEXT"
)

// Route is the retrieval strategy chosen for a question.
type Route string

const (
	RouteFieldLookup Route = "FIELD_LOOKUP"
	RouteSimilarity  Route = "SIMILARITY"
	RouteAggregate   Route = "AGGREGATE"
)

// ParseRoute matches a raw classifier string against the closed route enum.
func ParseRoute(s string) (Route, bool) {
	switch Route(strings.ToUpper(strings.TrimSpace(s))) {
	case RouteFieldLookup:
		return RouteFieldLookup, true
	case RouteSimilarity:
		return RouteSimilarity, true
	case RouteAggregate:
		return RouteAggregate, true
	}
	return "", false
}

// DocumentType values form the closed taxonomy used across the pipeline:
// the ingestion path normalizes free-text labels into them, the classifier
// prompt enumerates them, and the aggregation path filters on exact values.
const (
	DocTypeIdentity   = "IDENTITY_DOCUMENT"
	DocTypeEducation  = "EDUCATION_DOCUMENT"
	DocTypeFinancial  = "FINANCIAL_BILL"
	DocTypeBank       = "BANK_STATEMENT"
	DocTypeSalary     = "SALARY_SLIP"
	DocTypeLegal      = "LEGAL_DOCUMENT"
	DocTypeGovernment = "GOVERNMENT_DOCUMENT"
	DocTypeMedical    = "MEDICAL_DOCUMENT"
	DocTypeOther      = "OTHER"
)

// DocumentTypes lists all taxonomy values.
var DocumentTypes = []string{
	DocTypeIdentity, DocTypeEducation, DocTypeFinancial, DocTypeBank,
	DocTypeSalary, DocTypeLegal, DocTypeGovernment, DocTypeMedical, DocTypeOther,
}

type aliasRule struct {
	docType  string
	keywords []string
}

// Alias rules are checked in order; legal and government come before
// financial so labels like "income tax receipt" resolve to the tax family.
var aliasRules = []aliasRule{
	{DocTypeIdentity, []string{
		"aadhaar", "aadhar", "pan card", "pan ", "passport", "driving license",
		"driving licence", "voter id", "election card", "identity", "id card", "ration card",
	}},
	{DocTypeEducation, []string{
		"marksheet", "mark sheet", "report card", "certificate", "degree",
		"diploma", "transcript", "education", "academic",
	}},
	{DocTypeLegal, []string{
		"contract", "agreement", "insurance", "policy", "will", "affidavit",
		"power of attorney", "rental", "lease", "legal", "nda", "mou",
	}},
	{DocTypeGovernment, []string{
		"tax return", "itr", "form 16", "form16", "property tax", "gst filing",
		"registration certificate", "govt", "government", "challan", "tds", "income tax",
	}},
	{DocTypeMedical, []string{
		"medical", "prescription", "lab report", "pathology", "discharge",
		"diagnosis", "health", "doctor", "hospital", "clinical",
	}},
	{DocTypeFinancial, []string{
		"invoice", "receipt", "bill", "utility", "electricity", "water",
		"phone", "mobile", "recharge", "grocery", "purchase", "order",
	}},
	{DocTypeBank, []string{
		"bank statement", "passbook", "account statement", "bank",
	}},
	{DocTypeSalary, []string{
		"salary", "pay slip", "payslip", "pay stub", "wage", "compensation",
	}},
}

// NormalizeDocumentType maps the free-text document type emitted by the
// extraction model onto the closed taxonomy. Unrecognized labels become OTHER.
func NormalizeDocumentType(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return DocTypeOther
	}

	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.ReplaceAll(normalized, "-", " ")
	normalized = strings.ReplaceAll(normalized, "_", " ")

	// A label that is already a taxonomy value round-trips unchanged.
	upper := strings.ToUpper(strings.ReplaceAll(normalized, " ", "_"))
	for _, dt := range DocumentTypes {
		if upper == dt {
			return dt
		}
	}

	for _, rule := range aliasRules {
		for _, kw := range rule.keywords {
			if strings.Contains(normalized, kw) {
				return rule.docType
			}
		}
	}
	return DocTypeOther
}
