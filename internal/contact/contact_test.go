package contact

import (
	"errors"
	"strings"
	"testing"
)

func TestValidatePhoneNumber(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{"ten digits", "9876543210", true},
		{"all zeros", "0000000000", true},
		{"empty", "", false},
		{"five digits", "12345", false},
		{"nine digits", "987654321", false},
		{"eleven digits", "98765432101", false},
		{"letter inside", "98765a3210", false},
		{"dashes", "987-654-32", false},
		{"leading plus", "+987654321", false},
		{"space padded", " 987654321", false},
		{"arabic-indic digits", "٠١٢٣٤٥٦٧٨٩", true},
		{"devanagari digits", "९८७६५४३२१०", true},
		{"nine arabic-indic digits", "٠١٢٣٤٥٦٧٨", false},
		{"superscript two", "²123456789", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePhoneNumber(tt.phone)
			if tt.valid && err != nil {
				t.Errorf("ValidatePhoneNumber(%q) error = %v, want nil", tt.phone, err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidPhoneNumber) {
				t.Errorf("ValidatePhoneNumber(%q) error = %v, want ErrInvalidPhoneNumber", tt.phone, err)
			}
		})
	}
}

func TestZeroValue(t *testing.T) {
	var c Contact
	if c.ID != 0 || c.Name != "" || c.PhoneNumber != "" {
		t.Errorf("zero Contact = %+v, want all empty", c)
	}
}

func TestSetters(t *testing.T) {
	// Given: a fresh contact
	var c Contact

	// When: fields are set one by one
	c.SetID(1)
	c.SetName("Aadarsh")
	if err := c.SetPhoneNumber("9876543210"); err != nil {
		t.Fatalf("SetPhoneNumber() error = %v", err)
	}

	// Then: all values are stored verbatim
	want := Contact{ID: 1, Name: "Aadarsh", PhoneNumber: "9876543210"}
	if c != want {
		t.Errorf("contact = %+v, want %+v", c, want)
	}
}

func TestSetPhoneNumber_InvalidKeepsEmpty(t *testing.T) {
	// Given: a contact that never had a phone number
	var c Contact

	// When: a 5-digit number is assigned
	err := c.SetPhoneNumber("12345")

	// Then: the assignment is rejected and the field stays empty
	if !errors.Is(err, ErrInvalidPhoneNumber) {
		t.Fatalf("SetPhoneNumber(12345) error = %v, want ErrInvalidPhoneNumber", err)
	}
	if c.PhoneNumber != "" {
		t.Errorf("phone = %q, want empty", c.PhoneNumber)
	}
}

func TestSetPhoneNumber_InvalidKeepsPrevious(t *testing.T) {
	// Given: a contact with a valid phone number
	var c Contact
	if err := c.SetPhoneNumber("9123456789"); err != nil {
		t.Fatal(err)
	}

	// When: an invalid number is assigned
	for _, bad := range []string{"", "91234567", "91234567890", "9123x56789"} {
		_ = c.SetPhoneNumber(bad)
	}

	// Then: the previous value survives (not cleared)
	if c.PhoneNumber != "9123456789" {
		t.Errorf("phone = %q, want %q", c.PhoneNumber, "9123456789")
	}
}

func TestSetPhoneNumber_StoresVerbatim(t *testing.T) {
	var c Contact
	if err := c.SetPhoneNumber("0012345678"); err != nil {
		t.Fatal(err)
	}
	if c.PhoneNumber != "0012345678" {
		t.Errorf("phone = %q, want leading zeros preserved", c.PhoneNumber)
	}
}

func TestSetPhoneNumber_NonASCIIDigits(t *testing.T) {
	// Given: a contact and a phone of ten Arabic-Indic digits (20 bytes)
	var c Contact
	phone := "٠١٢٣٤٥٦٧٨٩"

	// When: it is assigned
	err := c.SetPhoneNumber(phone)

	// Then: it is stored, since length counts characters, not bytes
	if err != nil {
		t.Fatalf("SetPhoneNumber(%q) error = %v", phone, err)
	}
	if c.PhoneNumber != phone {
		t.Errorf("phone = %q, want %q", c.PhoneNumber, phone)
	}
}

func TestValidatePhoneNumber_ReportsCharacterCount(t *testing.T) {
	err := ValidatePhoneNumber("٠١٢٣٤")
	if err == nil || !strings.Contains(err.Error(), "got 5 characters") {
		t.Errorf("ValidatePhoneNumber() error = %v, want character count 5", err)
	}
}

func TestNew(t *testing.T) {
	c, err := New(2, "Rahul", "9123456789")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if c.ID != 2 || c.Name != "Rahul" || c.PhoneNumber != "9123456789" {
		t.Errorf("New() = %+v", c)
	}

	_, err = New(3, "Bad", "123")
	if !errors.Is(err, ErrInvalidPhoneNumber) {
		t.Errorf("New(invalid phone) error = %v, want ErrInvalidPhoneNumber", err)
	}
}

func TestBuilder(t *testing.T) {
	t.Run("valid fields build a contact", func(t *testing.T) {
		c, err := NewBuilder().ID(1).Name("Aadarsh").PhoneNumber("9876543210").Build()
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		want := Contact{ID: 1, Name: "Aadarsh", PhoneNumber: "9876543210"}
		if c != want {
			t.Errorf("Build() = %+v, want %+v", c, want)
		}
	})

	t.Run("invalid phone fails the build", func(t *testing.T) {
		c, err := NewBuilder().ID(1).Name("x").PhoneNumber("12345").Build()
		if !errors.Is(err, ErrInvalidPhoneNumber) {
			t.Fatalf("Build() error = %v, want ErrInvalidPhoneNumber", err)
		}
		if c != (Contact{}) {
			t.Errorf("Build() = %+v, want zero contact on error", c)
		}
	})

	t.Run("first error wins", func(t *testing.T) {
		_, err := NewBuilder().PhoneNumber("1").PhoneNumber("9876543210").PhoneNumber("abc").Build()
		if err == nil || !strings.Contains(err.Error(), "got 1 characters") {
			t.Errorf("Build() error = %v, want the first rejection", err)
		}
	})
}
