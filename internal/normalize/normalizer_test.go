package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_CodesAreIdempotent(t *testing.T) {
	for _, n := range []*Normalizer{Reasons, Positions} {
		for _, code := range n.Codes() {
			got, ok := n.Resolve(code)
			require.True(t, ok, code)
			assert.Equal(t, code, got)

			again, ok := n.Resolve(got)
			require.True(t, ok)
			assert.Equal(t, got, again)
		}
	}
}

func TestResolve_EveryLabelMapsToACode(t *testing.T) {
	tests := []struct {
		name   string
		n      *Normalizer
		labels []Label
	}{
		{name: "reasons", n: Reasons, labels: reasonLabels},
		{name: "positions", n: Positions, labels: positionLabels},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, l := range tt.labels {
				got, ok := tt.n.Resolve(l.Text)
				require.True(t, ok, l.Text)
				assert.Equal(t, l.Code, got, l.Text)
				assert.True(t, tt.n.IsCode(got))
			}
		})
	}
}

func TestResolve_KnownVariants(t *testing.T) {
	tests := []struct {
		name string
		n    *Normalizer
		raw  string
		want string
	}{
		{name: "role era other", n: Reasons, raw: "Other", want: ReasonOther},
		{name: "problem era other", n: Reasons, raw: "Other (problem)", want: ReasonOther},
		{name: "russian other shared by both eras", n: Reasons, raw: "Другое", want: ReasonOther},
		{name: "uzbek other shared by both eras", n: Reasons, raw: "Boshqa", want: ReasonOther},
		{name: "legacy russian clinic owner", n: Reasons, raw: "Владелец клиники", want: ReasonConsultation},
		{name: "current russian consultation", n: Reasons, raw: "Консультация", want: ReasonConsultation},
		{name: "surrounding spaces", n: Reasons, raw: "  Pain \t", want: ReasonPain},
		{name: "ascii apostrophe", n: Positions, raw: "Implantolog ma'ruzachilar", want: PositionImplantologistSpeaker},
		{name: "unicode apostrophe", n: Positions, raw: "Implantolog ma’ruzachilar", want: PositionImplantologistSpeaker},
		{name: "position code", n: Positions, raw: "dealer_distributors", want: PositionDealerDistributor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.n.Resolve(tt.raw)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_Unresolved(t *testing.T) {
	for _, raw := range []string{"", "Dentist", "clinic owner", "CLINIC_OWNER", "implantologists_speakers"} {
		_, ok := Reasons.Resolve(raw)
		assert.False(t, ok, raw)
	}

	_, ok := Positions.Resolve("clinic_owner")
	assert.False(t, ok)
}

func TestIsPlaceholder(t *testing.T) {
	t.Run("blank", func(t *testing.T) {
		for _, raw := range []string{"", " ", "\t\n  "} {
			assert.True(t, Reasons.IsPlaceholder(raw))
			assert.True(t, Positions.IsPlaceholder(raw))
		}
	})

	t.Run("listed prompts", func(t *testing.T) {
		for _, p := range reasonPlaceholders {
			assert.True(t, Reasons.IsPlaceholder(p), p)
		}
		for _, p := range positionPlaceholders {
			assert.True(t, Positions.IsPlaceholder(p), p)
		}
	})

	t.Run("case and spacing variants", func(t *testing.T) {
		assert.True(t, Reasons.IsPlaceholder("select PROBLEM"))
		assert.True(t, Reasons.IsPlaceholder("  Выберите должность  "))
		assert.True(t, Reasons.IsPlaceholder("Выберите Должност"))
		assert.True(t, Positions.IsPlaceholder("ВЫБИРАЙТЕ"))
	})

	t.Run("codes and labels are not prompts", func(t *testing.T) {
		for _, c := range Reasons.Codes() {
			assert.False(t, Reasons.IsPlaceholder(c), c)
		}
		for _, l := range reasonLabels {
			assert.False(t, Reasons.IsPlaceholder(l.Text), l.Text)
		}
		for _, c := range Positions.Codes() {
			assert.False(t, Positions.IsPlaceholder(c), c)
		}
		for _, l := range positionLabels {
			assert.False(t, Positions.IsPlaceholder(l.Text), l.Text)
		}
	})
}

func TestCodes(t *testing.T) {
	assert.Len(t, Reasons.Codes(), 7)
	assert.Len(t, Positions.Codes(), 4)
	assert.Contains(t, Reasons.Codes(), Other)
	assert.Contains(t, Positions.Codes(), Other)
}

func TestNew_PanicsOnConflictingLabels(t *testing.T) {
	assert.Panics(t, func() {
		New([]string{"a", "b"}, nil, []Label{{"x", "a"}, {"x", "b"}})
	})
	assert.Panics(t, func() {
		New([]string{"a"}, nil, []Label{{"x", "missing"}})
	})
	assert.NotPanics(t, func() {
		New([]string{"a"}, nil, []Label{{"x", "a"}, {"x", "a"}})
	})
}

func TestReasonLabel(t *testing.T) {
	assert.Equal(t, "Боль", ReasonLabel(LangRU, ReasonPain))
	assert.Equal(t, "Shish", ReasonLabel(LangUZ, ReasonSwelling))
	assert.Equal(t, "Consultation", ReasonLabel(LangEN, ReasonConsultation))
	assert.Equal(t, "Warranty / Service", ReasonLabel(Lang("de"), ReasonWarranty))
	assert.Equal(t, "unknown", ReasonLabel(LangRU, "unknown"))
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "Pain / Боль / Og'riq", ReasonDisplay(ReasonPain))
	assert.Equal(t, "legacy", ReasonDisplay("legacy"))
	assert.Equal(t, "Italy/Abroad Agents", PositionDisplay(PositionAgent))
}

func TestDetectLang(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		referer  string
		want     Lang
	}{
		{name: "explicit wins", explicit: "ru", referer: "https://site.uz/uz/contact/", want: LangRU},
		{name: "explicit any case", explicit: " UZ ", want: LangUZ},
		{name: "unsupported explicit falls to referer", explicit: "de", referer: "https://site.uz/uz/contact/", want: LangUZ},
		{name: "referer russian", referer: "https://site.uz/ru/", want: LangRU},
		{name: "referer without segment", referer: "https://site.uz/contact", want: LangEN},
		{name: "nothing", want: LangEN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLang(tt.explicit, tt.referer))
		})
	}
}
