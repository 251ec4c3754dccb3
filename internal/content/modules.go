// Package content holds the built-in curriculum: study modules,
// the achievement catalog, the static question bank and the seed
// emergency scenarios.
package content

// Difficulty grades a module.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Topic is one study unit inside a module.
type Topic struct {
	ID                string
	Title             string
	Description       string
	KeyPoints         []string
	PracticeQuestions int
	EstimatedMins     int
}

// Module is a curriculum unit with its topics.
type Module struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Color       string
	TotalXP     int
	Difficulty  Difficulty
	Topics      []Topic
}

// Topic looks up a topic by ID, nil if absent.
func (m *Module) Topic(id string) *Topic {
	for i := range m.Topics {
		if m.Topics[i].ID == id {
			return &m.Topics[i]
		}
	}
	return nil
}

// Modules returns the built-in curriculum.
func Modules() []Module {
	return modules
}

// ModuleByID looks up a module, nil if absent.
func ModuleByID(id string) *Module {
	for i := range modules {
		if modules[i].ID == id {
			return &modules[i]
		}
	}
	return nil
}

var modules = []Module{
	{
		ID:          "module-7",
		Title:       "Childbearing Family at Risk During Labor and Delivery",
		Description: "Management of high-risk labor: PROM, dystocia and emergency interventions.",
		Icon:        "🤰",
		Color:       "#FF006E",
		TotalXP:     500,
		Difficulty:  DifficultyIntermediate,
		Topics: []Topic{
			{
				ID:          "prom",
				Title:       "Premature Rupture of Membranes (PROM)",
				Description: "PROM, PPROM and their management strategies",
				KeyPoints: []string{
					"Definition: ROM before onset of labor",
					"PPROM: preterm PROM (before 37 weeks)",
					"Risk factors: infection, trauma, smoking",
					"Diagnosis: Nitrazine test, ferning pattern",
					"Management: antibiotics, corticosteroids, monitoring",
				},
				PracticeQuestions: 15,
				EstimatedMins:     30,
			},
			{
				ID:          "dystocia",
				Title:       "Dystocia and Labor Complications",
				Description: "Identify and manage abnormal labor patterns",
				KeyPoints: []string{
					"Powers: ineffective contractions",
					"Passenger: fetal malposition, macrosomia",
					"Passage: pelvic abnormalities",
					"Psyche: maternal anxiety affecting labor",
					"Interventions: position changes, augmentation",
				},
				PracticeQuestions: 20,
				EstimatedMins:     45,
			},
			{
				ID:          "emergency-birth",
				Title:       "Emergency Birth Situations",
				Description: "Precipitous delivery and emergency response",
				KeyPoints: []string{
					"Precipitous labor: under 3 hours",
					"Shoulder dystocia management",
					"Umbilical cord prolapse",
					"Placental emergencies",
					"Neonatal resuscitation basics",
				},
				PracticeQuestions: 25,
				EstimatedMins:     60,
			},
		},
	},
	{
		ID:          "module-8",
		Title:       "Postpartum Complications",
		Description: "Recognize and respond to hemorrhage, infection and mood disorders.",
		Icon:        "👶",
		Color:       "#8338EC",
		TotalXP:     600,
		Difficulty:  DifficultyAdvanced,
		Topics: []Topic{
			{
				ID:          "postpartum-hemorrhage",
				Title:       "Postpartum Hemorrhage (PPH)",
				Description: "The 4 Ts and rapid response to hemorrhage",
				KeyPoints: []string{
					"Definition: >500mL vaginal, >1000mL cesarean",
					"Tone: uterine atony (70% of cases)",
					"Trauma: lacerations, hematomas",
					"Tissue: retained placenta",
					"Thrombin: coagulation disorders",
					"Management: fundal massage, uterotonics, blood products",
				},
				PracticeQuestions: 30,
				EstimatedMins:     45,
			},
			{
				ID:          "postpartum-infections",
				Title:       "Postpartum Infections",
				Description: "Endometritis, wound infections and mastitis",
				KeyPoints: []string{
					"Endometritis: fever, uterine tenderness",
					"Wound infections: REEDA assessment",
					"Mastitis vs engorgement",
					"UTI and pyelonephritis",
					"Antibiotic therapy guidelines",
				},
				PracticeQuestions: 20,
				EstimatedMins:     35,
			},
			{
				ID:          "postpartum-mood",
				Title:       "Postpartum Mood Disorders",
				Description: "Differentiate blues, depression and psychosis",
				KeyPoints: []string{
					"Baby blues: 80%, days 3-5, self-limiting",
					"PPD: 10-15%, anytime first year",
					"Postpartum psychosis: 0.1-0.2%, emergency",
					"Edinburgh Postnatal Depression Scale",
					"Treatment and support resources",
				},
				PracticeQuestions: 18,
				EstimatedMins:     40,
			},
		},
	},
}
