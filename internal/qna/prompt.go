package qna

import (
	"fmt"
	"strings"

	"github.com/niharsaraf26/smartdocs/internal/domain"
)

// Sentinel the answering prompts instruct the model to emit when the
// provided context does not contain the answer.
const answerNotFoundSentinel = "ANSWER_NOT_FOUND"

// Fixed user-facing messages for the non-success outcomes.
const (
	msgNoSimilarDocuments = "I couldn't find any documents to answer your question."
	msgSimilarNoContent   = "I found matching documents but couldn't retrieve their content."
	msgNoProcessedDocs    = "I don't have any processed documents to answer your question. Please upload and process some documents first."
	msgAggregateNoContent = "Found matching documents but couldn't retrieve their content."
	msgGenerationFailed   = "I'm sorry, I encountered an issue processing your request."
	msgGenerationPanicked = "I apologize, but I'm having trouble accessing your documents right now."
	msgAnswerNotInContext = "I searched through your documents but couldn't find that specific information."
	msgUnexpectedError    = "An error occurred while processing your question."
)

// Canonical field names by document family, as produced by the extraction
// pipeline. The routing prompt enumerates them so the classifier emits names
// that actually exist in the metadata store.
var fieldRegistry = []struct {
	family string
	fields []string
}{
	{"Identity documents", []string{
		"person_name", "father_name", "mother_name", "guardian_name", "date_of_birth",
		"gender", "id_number", "address", "phone", "email", "issue_date", "expiry_date",
	}},
	{"Education documents", []string{
		"person_name", "roll_number", "institution_name", "exam_name", "year", "result",
		"total_marks", "marks_obtained", "percentage", "grade", "subjects",
	}},
	{"Financial bills", []string{
		"provider_name", "customer_name", "invoice_number", "bill_date", "total_amount",
		"tax_amount", "net_amount", "payment_status",
	}},
	{"Bank statements", []string{
		"bank_name", "account_holder", "account_number", "opening_balance", "closing_balance",
	}},
	{"Salary slips", []string{
		"employee_name", "employer_name", "designation", "basic_salary", "net_salary", "gross_salary",
	}},
	{"Legal documents", []string{
		"party_name_1", "party_name_2", "document_title", "effective_date", "expiry_date",
		"policy_number", "premium_amount",
	}},
	{"Government documents", []string{
		"person_name", "assessment_year", "total_income", "tax_paid", "refund_amount",
		"form_type", "registration_number",
	}},
	{"Medical documents", []string{
		"patient_name", "doctor_name", "hospital_name", "diagnosis", "prescription",
		"lab_test_name", "lab_result",
	}},
}

// buildRoutingPrompt renders the classification prompt for a question.
func buildRoutingPrompt(question string) string {
	var b strings.Builder

	b.WriteString("You are a query classifier for a personal document assistant. ")
	b.WriteString("Classify the user's question into exactly one of three categories.\n\n")

	b.WriteString("Categories:\n")
	b.WriteString("1. FIELD_LOOKUP - the question asks for a specific extracted field value, ")
	b.WriteString("like an ID number, a date, a name, or an amount. ")
	b.WriteString("Examples: \"What is my PAN number?\", \"When does my passport expire?\", \"What is my roll number?\"\n")
	b.WriteString("2. SIMILARITY - the question asks about the content of one document and needs ")
	b.WriteString("reading it, not just a stored field. ")
	b.WriteString("Examples: \"What does my insurance policy cover?\", \"Summarize my rental agreement\", \"What subjects are on my marksheet?\"\n")
	b.WriteString("3. AGGREGATE - the question spans or compares multiple documents. ")
	b.WriteString("Examples: \"How much did I spend on electricity this year?\", \"Compare my last two salary slips\", \"List all my certificates\"\n\n")

	b.WriteString("Known metadata fields by document family:\n")
	for _, entry := range fieldRegistry {
		b.WriteString(fmt.Sprintf("- %s: %s\n", entry.family, strings.Join(entry.fields, ", ")))
	}
	b.WriteString("\n")

	b.WriteString("Known document types: ")
	b.WriteString(strings.Join(domain.DocumentTypes, ", "))
	b.WriteString("\n\n")

	b.WriteString("Field mapping examples:\n")
	b.WriteString("- \"What is my PAN number?\" -> fields: [\"id_number\"]\n")
	b.WriteString("- \"When was I born?\" -> fields: [\"date_of_birth\"]\n")
	b.WriteString("- \"What is my net salary?\" -> fields: [\"net_salary\"]\n")
	b.WriteString("- \"What is my electricity bill amount?\" -> fields: [\"total_amount\"]\n\n")

	b.WriteString("Respond with ONLY a JSON object, no other text:\n")
	b.WriteString("{\"type\": \"FIELD_LOOKUP\" or \"SIMILARITY\" or \"AGGREGATE\", ")
	b.WriteString("\"fields\": [\"field_name\", ...] or null, ")
	b.WriteString("\"document_types\": [\"DOCUMENT_TYPE\", ...] or null}\n")
	b.WriteString("Set \"fields\" only for FIELD_LOOKUP. Set \"document_types\" only for AGGREGATE, ")
	b.WriteString("and only when the question clearly targets specific document types.\n\n")

	b.WriteString("Question: ")
	b.WriteString(question)

	return b.String()
}

// buildAnswerPrompt renders the single-document retrieval prompt.
func buildAnswerPrompt(question, context string) string {
	var b strings.Builder
	b.WriteString("You are an enterprise document retrieval assistant. ")
	b.WriteString("Answer the user's question using ONLY the information in the documents below. ")
	b.WriteString("Do not use outside knowledge and do not guess. ")
	b.WriteString("If the documents do not contain the answer, respond with exactly ")
	b.WriteString(answerNotFoundSentinel)
	b.WriteString(".\n\nDocuments:\n")
	b.WriteString(context)
	b.WriteString("\nQuestion: ")
	b.WriteString(question)
	b.WriteString("\n\nAnswer:")
	return b.String()
}

// buildCrossDocPrompt renders the multi-document comparison prompt.
func buildCrossDocPrompt(question, context string) string {
	var b strings.Builder
	b.WriteString("You are a data analyst working over a user's personal document collection. ")
	b.WriteString("Answer the question by reading across ALL the documents below, comparing and ")
	b.WriteString("aggregating values where the question calls for it. ")
	b.WriteString("Use ONLY the information in the documents. ")
	b.WriteString("If the documents do not contain the answer, respond with exactly ")
	b.WriteString(answerNotFoundSentinel)
	b.WriteString(".\n\nDocuments:\n")
	b.WriteString(context)
	b.WriteString("\nQuestion: ")
	b.WriteString(question)
	b.WriteString("\n\nAnswer:")
	return b.String()
}
