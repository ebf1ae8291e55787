package domain

import "testing"

func TestFieldKeyTitle(t *testing.T) {
	tests := []struct {
		key  FieldKey
		want string
	}{
		{FieldWhenToUse, "When To Use"},
		{FieldUse, "Use"},
		{FieldUseCases, "Use Cases"},
		{FieldBenefits, "Benefits"},
		{FieldCaveats, "Caveats"},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			if got := tt.key.Title(); got != tt.want {
				t.Errorf("Title() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseFieldKey(t *testing.T) {
	for _, k := range FieldKeys() {
		got, ok := ParseFieldKey(k.String())
		if !ok || got != k {
			t.Errorf("ParseFieldKey(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := ParseFieldKey("summary"); ok {
		t.Error("expected unrecognized key to fail")
	}
	if len(FieldKeys()) != 9 {
		t.Errorf("FieldKeys() len = %d, want 9", len(FieldKeys()))
	}
}

func TestFieldIsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		want  bool
	}{
		{"blank text", TextField(FieldNotes, "  "), true},
		{"text", TextField(FieldNotes, "careful"), false},
		{"empty list", ListField(FieldRisks, nil), true},
		{"list", ListField(FieldRisks, []string{"drift"}), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.field.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPatternField(t *testing.T) {
	p := Pattern{Fields: []Field{TextField(FieldCosts, "tokens")}}

	if f, ok := p.Field(FieldCosts); !ok || f.Text != "tokens" {
		t.Errorf("Field(costs) = %+v, %v", f, ok)
	}
	if _, ok := p.Field(FieldRisks); ok {
		t.Error("expected risks absent")
	}
}
