package normalize

// Position codes of the "work with us" form.
const (
	PositionImplantologistSpeaker = "implantologists_speakers"
	PositionAgent                 = "italy_abroad_agents"
	PositionDealerDistributor     = "dealer_distributors"
	PositionOther                 = Other
)

var positionCodes = []string{
	PositionImplantologistSpeaker,
	PositionAgent,
	PositionDealerDistributor,
	PositionOther,
}

var positionPlaceholders = []string{
	"Select position",
	"Выбирайте",
	"Выберите должность",
	"Lavozimni tanlang",
	"Ariza berilayotgan lavozim",
}

var positionLabels = []Label{
	{"Implantologists Speakers", PositionImplantologistSpeaker},
	{"Italy/Abroad Agents", PositionAgent},
	{"Dealer-Distributors Italy/Abroad", PositionDealerDistributor},
	{"Other", PositionOther},

	{"Лекторы-имплантологи", PositionImplantologistSpeaker},
	{"Агенты (Зарубежье)", PositionAgent},
	{"Дилеры-дистрибьюторы (Зарубежье)", PositionDealerDistributor},
	{"Другое", PositionOther},

	// Uzbek pages were published with both apostrophe forms.
	{"Implantolog ma'ruzachilar", PositionImplantologistSpeaker},
	{"Implantolog ma’ruzachilar", PositionImplantologistSpeaker},
	{"Agentlar Italiya/Xorij", PositionAgent},
	{"Diler-distribyutorlar Italiya/Xorij", PositionDealerDistributor},
	{"Boshqa", PositionOther},
}

// Positions resolves job application position values.
var Positions = New(positionCodes, positionPlaceholders, positionLabels)

var positionChoices = map[string]string{
	PositionImplantologistSpeaker: "Implantologists Speakers",
	PositionAgent:                 "Italy/Abroad Agents",
	PositionDealerDistributor:     "Dealer-Distributors Italy/Abroad",
	PositionOther:                 "Other",
}

// PositionDisplay is the label operators see for a stored position code.
func PositionDisplay(code string) string {
	if l, ok := positionChoices[code]; ok {
		return l
	}
	return code
}
