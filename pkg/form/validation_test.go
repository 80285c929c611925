package form_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-signup/pkg/form"
	"github.com/goliatone/go-signup/pkg/testsupport"
)

func TestValidate_AcceptsCanonicalValues(t *testing.T) {
	errs := form.Validate(testsupport.ValidValues())
	if !errs.Empty() {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidate_SingleEmptyField(t *testing.T) {
	cases := []struct {
		field form.Field
		value string
		want  string
	}{
		{form.FieldFirstName, "", form.MsgFirstNameEmpty},
		{form.FieldFirstName, "   ", form.MsgFirstNameEmpty},
		{form.FieldLastName, "", form.MsgLastNameEmpty},
		{form.FieldLastName, "\t\n", form.MsgLastNameEmpty},
		{form.FieldEmail, "", form.MsgEmailEmpty},
		{form.FieldEmail, "  ", form.MsgEmailEmpty},
		{form.FieldPassword, "", form.MsgPasswordEmpty},
		{form.FieldPassword, "      ", form.MsgPasswordEmpty},
	}

	for _, tc := range cases {
		t.Run(string(tc.field)+"/"+strings.TrimSpace(tc.value), func(t *testing.T) {
			values := testsupport.ValidValues().With(tc.field, tc.value)
			got := form.Validate(values)
			want := form.ErrorSet{tc.field: tc.want}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("errors mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidate_Email(t *testing.T) {
	cases := map[string]string{
		"a@b.co":        "",
		"jane@doe.com":  "",
		"a.b@c.d.e":     "",
		"a@b":           form.MsgEmailInvalid,
		"ab.co":         form.MsgEmailInvalid,
		"a b@c.co":      form.MsgEmailInvalid,
		"a@b c.co":      form.MsgEmailInvalid,
		"a@@b.co":       form.MsgEmailInvalid,
		" jane@doe.com": form.MsgEmailInvalid,
		"":              form.MsgEmailEmpty,
	}

	for email, want := range cases {
		values := testsupport.ValidValues().With(form.FieldEmail, email)
		got := form.Validate(values).Message(form.FieldEmail)
		if got != want {
			t.Fatalf("email %q: want %q, got %q", email, want, got)
		}
	}
}

func TestValidate_PasswordLength(t *testing.T) {
	cases := map[string]string{
		"a":       form.MsgPasswordShort,
		"12345":   form.MsgPasswordShort,
		" 1234 ":  "",
		"123456":  "",
		"secret1": "",
		"ñññññ":   form.MsgPasswordShort,
		"ññññññ":  "",
	}

	for password, want := range cases {
		values := testsupport.ValidValues().With(form.FieldPassword, password)
		got := form.Validate(values).Message(form.FieldPassword)
		if got != want {
			t.Fatalf("password %q: want %q, got %q", password, want, got)
		}
	}
}

func TestValidate_ReportsEveryInvalidField(t *testing.T) {
	got := form.Validate(form.Values{
		form.FieldFirstName: "",
		form.FieldLastName:  " ",
		form.FieldEmail:     "a@b",
		form.FieldPassword:  "abc",
	})

	want := form.ErrorSet{
		form.FieldFirstName: form.MsgFirstNameEmpty,
		form.FieldLastName:  form.MsgLastNameEmpty,
		form.FieldEmail:     form.MsgEmailInvalid,
		form.FieldPassword:  form.MsgPasswordShort,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_EmptyValuesReportsAllFields(t *testing.T) {
	got := form.Validate(form.EmptyValues())
	if len(got) != len(form.Fields()) {
		t.Fatalf("expected %d errors, got %v", len(form.Fields()), got)
	}
}
