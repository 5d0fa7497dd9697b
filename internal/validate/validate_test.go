package validate

import (
	"strings"
	"testing"
)

func TestFieldName(t *testing.T) {
	cases := []struct {
		value  string
		wantOK bool
	}{
		{"", false},
		{"   ", false},
		{"Al", false},
		{"Ann", true},
		{"Leanne Graham", true},
		{strings.Repeat("x", 50), true},
		{strings.Repeat("x", 51), false},
	}
	for _, tc := range cases {
		msg := Field(FieldName, tc.value)
		if (msg == "") != tc.wantOK {
			t.Errorf("Field(name, %q) = %q, wantOK=%v", tc.value, msg, tc.wantOK)
		}
	}
}

func TestFieldLengthCountsRunes(t *testing.T) {
	// Two characters in several bytes still misses the minimum.
	if msg := Field(FieldName, "Đỗ"); msg == "" {
		t.Error("two-rune name passed the three-rune minimum")
	}
	// Three accented characters pass it.
	if msg := Field(FieldName, "Đặng"); msg != "" {
		t.Errorf("accented name rejected: %q", msg)
	}
	// Fifty accented characters exceed fifty bytes but not fifty runes.
	if msg := Field(FieldName, strings.Repeat("ễ", 50)); msg != "" {
		t.Errorf("50-rune accented name rejected: %q", msg)
	}
	if msg := Field(FieldName, strings.Repeat("ễ", 51)); msg == "" {
		t.Error("51-rune name passed the maximum")
	}
}

func TestFieldNameRequiredMessage(t *testing.T) {
	if got := Field(FieldName, ""); got != "Name is required" {
		t.Errorf("empty name message = %q", got)
	}
	// Length failure reports the rule message, not the required message.
	if got := Field(FieldName, "Al"); got != Rules[FieldName].Message {
		t.Errorf("short name message = %q", got)
	}
}

func TestFieldUsername(t *testing.T) {
	cases := []struct {
		value  string
		wantOK bool
	}{
		{"", false},
		{"ab", false},
		{"abc", true},
		{"Bret", true},
		{strings.Repeat("u", 20), true},
		{strings.Repeat("u", 21), false},
	}
	for _, tc := range cases {
		msg := Field(FieldUsername, tc.value)
		if (msg == "") != tc.wantOK {
			t.Errorf("Field(username, %q) = %q, wantOK=%v", tc.value, msg, tc.wantOK)
		}
	}
}

func TestFieldEmail(t *testing.T) {
	cases := []struct {
		value  string
		wantOK bool
	}{
		{"", false},
		{"plainaddress", false},
		{"missing@domain", false},
		{"@no-local.com", false},
		{"has space@example.com", false},
		{"Sincere@april.biz", true},
		{"a@b.co", true},
	}
	for _, tc := range cases {
		msg := Field(FieldEmail, tc.value)
		if (msg == "") != tc.wantOK {
			t.Errorf("Field(email, %q) = %q, wantOK=%v", tc.value, msg, tc.wantOK)
		}
	}
}

func TestFieldPhone(t *testing.T) {
	cases := []struct {
		value  string
		wantOK bool
	}{
		{"", false},
		{"12345", false},              // too few digits
		{"123456789012", false},       // too many digits
		{"abc-def-ghij", false},       // pattern violation
		{"1234567890", true},          // bare 10 digits
		{"123-456-7890", true},        // separators stripped for the count
		{"(123) 456-7890", true},      // parens and spaces allowed
		{"+1 23 456 7890", true},      // plus allowed, still 10 digits
		{"123-456-78901", false},      // 11 digits despite valid chars
		{"123-456-789O", false},       // letter O is not a digit
	}
	for _, tc := range cases {
		msg := Field(FieldPhone, tc.value)
		if (msg == "") != tc.wantOK {
			t.Errorf("Field(phone, %q) = %q, wantOK=%v", tc.value, msg, tc.wantOK)
		}
	}
}

func TestFieldWebsiteOptional(t *testing.T) {
	// Empty passes because the field is optional.
	if msg := Field(FieldWebsite, ""); msg != "" {
		t.Errorf("empty website rejected: %q", msg)
	}
	if msg := Field(FieldWebsite, "   "); msg != "" {
		t.Errorf("whitespace website rejected: %q", msg)
	}

	// Non-empty must match the pattern.
	cases := []struct {
		value  string
		wantOK bool
	}{
		{"example.com", true},
		{"sub.example.co.uk", true},
		{"hildegard.org", true},
		{"no-tld", false},
		{"bad domain.com", false},
		{"example.c", false}, // TLD too short
	}
	for _, tc := range cases {
		msg := Field(FieldWebsite, tc.value)
		if (msg == "") != tc.wantOK {
			t.Errorf("Field(website, %q) = %q, wantOK=%v", tc.value, msg, tc.wantOK)
		}
	}
}

func TestFieldUnknownPasses(t *testing.T) {
	if msg := Field("nickname", "anything"); msg != "" {
		t.Errorf("unknown field produced message %q", msg)
	}
}

func TestFieldFirstFailureWins(t *testing.T) {
	// A value that violates both length and pattern reports exactly one
	// message, and required beats everything.
	got := Field(FieldUsername, "")
	if got != "Username is required" {
		t.Errorf("empty username message = %q", got)
	}
}

func TestFormCollectsAllFailures(t *testing.T) {
	errs := Form(map[string]string{
		FieldName:     "",
		FieldUsername: "ok_user",
		FieldEmail:    "not-an-email",
		FieldPhone:    "12345",
		FieldWebsite:  "",
	})

	if len(errs) != 3 {
		t.Fatalf("Form returned %d errors, want 3: %v", len(errs), errs)
	}
	for _, field := range []string{FieldName, FieldEmail, FieldPhone} {
		if errs[field] == "" {
			t.Errorf("missing error for %s", field)
		}
	}
	if _, ok := errs[FieldUsername]; ok {
		t.Error("valid username reported an error")
	}
}

func TestFormAllValid(t *testing.T) {
	errs := Form(map[string]string{
		FieldName:     "Leanne Graham",
		FieldUsername: "Bret",
		FieldEmail:    "Sincere@april.biz",
		FieldPhone:    "770-736-8031",
		FieldWebsite:  "hildegard.org",
	})
	if len(errs) != 0 {
		t.Errorf("valid form reported errors: %v", errs)
	}
}
