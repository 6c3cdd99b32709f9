package dto

import (
	"testing"

	"fieldforce/internal/core"
	"fieldforce/internal/pkg/request"

	"github.com/go-playground/validator/v10"
)

// gin 的 binding 走同一套 validator，測試時自己掛 tag name
func newBindingValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

func validJob() CreateJobDto {
	return CreateJobDto{
		Title:       "Field Sales Executive",
		Company:     "Fieldforce",
		Location:    "Pune",
		Type:        "full-time",
		WorkMode:    "on-site",
		Department:  "Sales",
		Description: "Visit dealers and report daily.",
	}
}

func TestCreateJobDtoValidates(t *testing.T) {
	v := newBindingValidator()
	job := validJob()
	if err := v.Struct(job); err != nil {
		t.Fatalf("expected valid dto: %v", err)
	}
}

func TestCreateJobDtoRejectsUnknownType(t *testing.T) {
	v := newBindingValidator()
	job := validJob()
	job.Type = "freelance"

	err := v.Struct(job)
	if err == nil {
		t.Fatalf("expected oneof violation")
	}

	appErr := request.GetError(job, err)
	fields := appErr.FieldErrors()
	messages, ok := fields["Type"]
	if !ok || len(messages) == 0 {
		t.Fatalf("expected Type field errors, got %v", fields)
	}
	if messages[0] != "job type must be one of full-time, part-time, contract, internship" {
		t.Fatalf("expected the custom message, got %q", messages[0])
	}
}

func TestCreateJobDtoEnumAccessors(t *testing.T) {
	job := validJob()
	if job.JobType() != core.JobType("full-time") {
		t.Fatalf("unexpected job type: %v", job.JobType())
	}
	if job.JobWorkMode() != core.WorkMode("on-site") {
		t.Fatalf("unexpected work mode: %v", job.JobWorkMode())
	}
}

func TestEarningItemMessagesKeyOnLeafField(t *testing.T) {
	v := newBindingValidator()
	batch := SubmitEarningsDto{Items: []EarningItemDto{{Description: "commission", Amount: "abc"}}}

	err := v.Struct(batch)
	if err == nil {
		t.Fatalf("expected numeric violation")
	}

	appErr := request.GetError(batch, err)
	fields := appErr.FieldErrors()
	messages, ok := fields["Amount"]
	if !ok || len(messages) == 0 {
		t.Fatalf("expected Amount field errors, got %v", fields)
	}
	if messages[0] != "amount must be a number" {
		t.Fatalf("expected the custom message, got %q", messages[0])
	}
}
