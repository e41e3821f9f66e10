package validation

import "testing"

type contactPayload struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

func TestStruct_Valid(t *testing.T) {
	errs := Struct(contactPayload{Name: "Jo", Email: "jo@example.com", Message: "hi"})
	if errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestStruct_MalformedEmail(t *testing.T) {
	errs := Struct(contactPayload{Name: "Jo", Email: "not-an-email", Message: "hi"})
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
	if errs[0].Field != "email" {
		t.Fatalf("expected field %q, got %q", "email", errs[0].Field)
	}
	if errs[0].Reason != "must be a valid email address" {
		t.Fatalf("unexpected reason %q", errs[0].Reason)
	}
}

func TestStruct_MissingRequired(t *testing.T) {
	errs := Struct(contactPayload{Email: "jo@example.com"})
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %v", errs)
	}
	fields := map[string]string{}
	for _, e := range errs {
		fields[e.Field] = e.Reason
	}
	if fields["name"] != "is required" || fields["message"] != "is required" {
		t.Fatalf("unexpected field errors: %v", fields)
	}
}
