package normalize

// Reason codes of the patient contact form. The stored strings predate the
// switch from "role" copy to "patient problem" copy and are kept for data
// compatibility, hence the mismatch between constant names and values.
const (
	ReasonConsultation = "clinic_owner"
	ReasonPain         = "lab_owner"
	ReasonSwelling     = "self_employed"
	ReasonImplantIssue = "buyer"
	ReasonCrownBridge  = "dealer"
	ReasonWarranty     = "agent"
	ReasonOther        = Other
)

var reasonCodes = []string{
	ReasonConsultation,
	ReasonPain,
	ReasonSwelling,
	ReasonImplantIssue,
	ReasonCrownBridge,
	ReasonWarranty,
	ReasonOther,
}

var reasonPlaceholders = []string{
	"Select problem",
	"Выберите проблему",
	"Muammoni tanlang",

	// role-era prompts
	"Select role",
	"Выберите должность",
	"Выберите Должность",
	"Lavozimni tanlang",
	"Select position",

	// typos shipped on the professional forms
	"Выберите Должност ",
	"Выберите Должность ",
}

// reasonLabels lists every option text the forms have ever posted. Some texts
// appear twice because both copy revisions used them; they must agree.
var reasonLabels = []Label{
	// role-era options, English
	{"Clinic Owner", ReasonConsultation},
	{"Laboratory Owner / Dental Technician", ReasonPain},
	{"Self-employed dentist", ReasonSwelling},
	{"Buyer", ReasonImplantIssue},
	{"Dealer", ReasonCrownBridge},
	{"Agent", ReasonWarranty},
	{"Other", ReasonOther},

	// role-era options, Russian
	{"Владелец клиники", ReasonConsultation},
	{"Владелец лаборатории / Зубной техник", ReasonPain},
	{"Владелец лаборатории / Зубной специалист", ReasonPain},
	{"Самозанятый стоматолог", ReasonSwelling},
	{"Стоматолог работающий на себя", ReasonSwelling},
	{"Покупатель", ReasonImplantIssue},
	{"Дилер", ReasonCrownBridge},
	{"Агент", ReasonWarranty},
	{"Другое", ReasonOther},

	// role-era options, Uzbek
	{"Klinika rahbari", ReasonConsultation},
	{"Laboratoriya rahbari / Tish Ustasi", ReasonPain},
	{"O'zini ish bilan band qilgan stomatolog", ReasonSwelling},
	{"Xususiy stomatolog", ReasonSwelling},
	{"Xaridor", ReasonImplantIssue},
	{"Sotib oluvchi", ReasonImplantIssue},
	{"Diler", ReasonCrownBridge},
	{"Agent", ReasonWarranty},
	{"Boshqa", ReasonOther},

	// patient problems, English
	{"Consultation", ReasonConsultation},
	{"Pain", ReasonPain},
	{"Swelling", ReasonSwelling},
	{"Implant issue (loose/discomfort)", ReasonImplantIssue},
	{"Crown/bridge issue", ReasonCrownBridge},
	{"Warranty / Service", ReasonWarranty},
	{"Other (problem)", ReasonOther},

	// patient problems, Russian
	{"Консультация", ReasonConsultation},
	{"Боль", ReasonPain},
	{"Отёк", ReasonSwelling},
	{"Проблема с имплантом (шатается/дискомфорт)", ReasonImplantIssue},
	{"Проблема с коронкой/мостом", ReasonCrownBridge},
	{"Гарантия / Сервис", ReasonWarranty},
	{"Другое", ReasonOther},

	// patient problems, Uzbek
	{"Konsultatsiya", ReasonConsultation},
	{"Og'riq", ReasonPain},
	{"Shish", ReasonSwelling},
	{"Implant bilan muammo (bo'shashgan/noqulaylik)", ReasonImplantIssue},
	{"Kron/most bilan muammo", ReasonCrownBridge},
	{"Kafolat / Servis", ReasonWarranty},
	{"Boshqa", ReasonOther},
}

// Reasons resolves contact form reason values.
var Reasons = New(reasonCodes, reasonPlaceholders, reasonLabels)

var reasonDisplay = map[Lang]map[string]string{
	LangEN: {
		ReasonConsultation: "Consultation",
		ReasonPain:         "Pain",
		ReasonSwelling:     "Swelling",
		ReasonImplantIssue: "Implant issue (loose/discomfort)",
		ReasonCrownBridge:  "Crown/bridge issue",
		ReasonWarranty:     "Warranty / Service",
		ReasonOther:        "Other",
	},
	LangRU: {
		ReasonConsultation: "Консультация",
		ReasonPain:         "Боль",
		ReasonSwelling:     "Отёк",
		ReasonImplantIssue: "Проблема с имплантом (шатается/дискомфорт)",
		ReasonCrownBridge:  "Проблема с коронкой/мостом",
		ReasonWarranty:     "Гарантия / Сервис",
		ReasonOther:        "Другое",
	},
	LangUZ: {
		ReasonConsultation: "Konsultatsiya",
		ReasonPain:         "Og'riq",
		ReasonSwelling:     "Shish",
		ReasonImplantIssue: "Implant bilan muammo (bo'shashgan/noqulaylik)",
		ReasonCrownBridge:  "Kron/most bilan muammo",
		ReasonWarranty:     "Kafolat / Servis",
		ReasonOther:        "Boshqa",
	},
}

// ReasonLabel returns the patient-facing label of code in lang, falling back
// to English, then to the code itself.
func ReasonLabel(lang Lang, code string) string {
	labels, ok := reasonDisplay[lang]
	if !ok {
		labels = reasonDisplay[DefaultLang]
	}
	if l, ok := labels[code]; ok {
		return l
	}
	return code
}

var reasonChoices = map[string]string{
	ReasonConsultation: "Consultation / Консультация / Konsultatsiya",
	ReasonPain:         "Pain / Боль / Og'riq",
	ReasonSwelling:     "Swelling / Отёк / Shish",
	ReasonImplantIssue: "Implant issue / Проблема с имплантом / Implant bilan muammo",
	ReasonCrownBridge:  "Crown/bridge issue / Проблема с коронкой/мостом / Kron/most bilan muammo",
	ReasonWarranty:     "Warranty / Service / Гарантия / Сервис / Kafolat / Servis",
	ReasonOther:        "Other / Другое / Boshqa",
}

// ReasonDisplay is the trilingual label operators see in listings and exports.
func ReasonDisplay(code string) string {
	if l, ok := reasonChoices[code]; ok {
		return l
	}
	return code
}
