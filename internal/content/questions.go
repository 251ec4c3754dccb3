package content

// Question is one multiple-choice exam question. Answer indexes into
// Options.
type Question struct {
	ID        string
	ModuleID  string
	TopicID   string
	Prompt    string
	Options   []string
	Answer    int
	Rationale string
}

// Questions returns the built-in bank, optionally filtered by module
// and topic. Empty filters match everything.
func Questions(moduleID, topicID string) []Question {
	var out []Question
	for _, q := range questionBank {
		if moduleID != "" && q.ModuleID != moduleID {
			continue
		}
		if topicID != "" && q.TopicID != topicID {
			continue
		}
		out = append(out, q)
	}
	return out
}

var questionBank = []Question{
	{
		ID:       "q-precipitous",
		ModuleID: "module-7",
		TopicID:  "emergency-birth",
		Prompt:   "What is the typical time frame for precipitous labor?",
		Options: []string{
			"Less than 3 hours",
			"3-6 hours",
			"6-12 hours",
			"More than 12 hours",
		},
		Answer:    0,
		Rationale: "Precipitous labor is usually completed in under 3 hours.",
	},
	{
		ID:       "q-prom-steroid",
		ModuleID: "module-7",
		TopicID:  "prom",
		Prompt:   "Which medication is commonly given for PROM to enhance fetal lung maturity?",
		Options: []string{
			"Magnesium sulfate",
			"Betamethasone",
			"Oxytocin",
			"Indomethacin",
		},
		Answer:    1,
		Rationale: "Betamethasone is a corticosteroid that promotes fetal lung maturity.",
	},
	{
		ID:       "q-prom-test",
		ModuleID: "module-7",
		TopicID:  "prom",
		Prompt:   "Which finding confirms rupture of membranes?",
		Options: []string{
			"Cloudy urine on dipstick",
			"Ferning pattern on microscopy",
			"Fundal height above expected",
			"Positive Chadwick's sign",
		},
		Answer:    1,
		Rationale: "Dried amniotic fluid shows a characteristic ferning pattern; Nitrazine turns blue.",
	},
	{
		ID:       "q-dystocia-first",
		ModuleID: "module-7",
		TopicID:  "dystocia",
		Prompt:   "A laboring patient has hypotonic contractions with no fetal distress. What is the nurse's first intervention?",
		Options: []string{
			"Prepare for cesarean birth",
			"Encourage ambulation and position changes",
			"Administer terbutaline",
			"Apply fundal pressure",
		},
		Answer:    1,
		Rationale: "Non-invasive measures like ambulation and repositioning are tried before augmentation.",
	},
	{
		ID:       "q-cord-prolapse",
		ModuleID: "module-7",
		TopicID:  "emergency-birth",
		Prompt:   "The nurse sees a loop of umbilical cord protruding from the vagina. What is the priority action?",
		Options: []string{
			"Attempt to reinsert the cord",
			"Place the patient in knee-chest position and relieve cord pressure",
			"Document and continue monitoring",
			"Administer oxytocin",
		},
		Answer:    1,
		Rationale: "Knee-chest or Trendelenburg plus manual elevation of the presenting part keeps the cord perfused.",
	},
	{
		ID:       "q-mcroberts",
		ModuleID: "module-7",
		TopicID:  "emergency-birth",
		Prompt:   "During a delivery complicated by shoulder dystocia, which maneuver is performed first?",
		Options: []string{
			"Fundal pressure",
			"Zavanelli maneuver",
			"McRoberts maneuver",
			"Internal podalic version",
		},
		Answer:    2,
		Rationale: "Hyperflexing the maternal hips (McRoberts) straightens the sacrum and frees the anterior shoulder; fundal pressure worsens impaction.",
	},
	{
		ID:       "q-pph-cause",
		ModuleID: "module-8",
		TopicID:  "postpartum-hemorrhage",
		Prompt:   "What is the most common cause of early postpartum hemorrhage?",
		Options: []string{
			"Uterine atony",
			"Cervical laceration",
			"Retained placenta",
			"Coagulopathy",
		},
		Answer:    0,
		Rationale: "Uterine atony accounts for about 70% of postpartum hemorrhage (Tone of the 4 Ts).",
	},
	{
		ID:       "q-pph-first",
		ModuleID: "module-8",
		TopicID:  "postpartum-hemorrhage",
		Prompt:   "A postpartum patient has a boggy fundus and heavy lochia. What does the nurse do first?",
		Options: []string{
			"Notify the provider",
			"Massage the fundus",
			"Increase IV fluids",
			"Insert an indwelling catheter",
		},
		Answer:    1,
		Rationale: "Fundal massage is the immediate first-line response to atony; other steps follow if bleeding persists.",
	},
	{
		ID:       "q-endometritis",
		ModuleID: "module-8",
		TopicID:  "postpartum-infections",
		Prompt:   "Which assessment finding is most consistent with endometritis?",
		Options: []string{
			"Unilateral breast tenderness with fever",
			"Foul-smelling lochia with uterine tenderness",
			"Burning on urination",
			"Localized calf pain",
		},
		Answer:    1,
		Rationale: "Endometritis presents with fever, uterine tenderness and foul lochia, typically 2-5 days postpartum.",
	},
	{
		ID:       "q-mastitis",
		ModuleID: "module-8",
		TopicID:  "postpartum-infections",
		Prompt:   "A breastfeeding patient with mastitis asks whether to stop nursing. What is the best response?",
		Options: []string{
			"Stop nursing until antibiotics finish",
			"Continue nursing or pumping to empty the breast",
			"Nurse only from the unaffected side permanently",
			"Switch to formula feeding",
		},
		Answer:    1,
		Rationale: "Milk stasis worsens mastitis; continued emptying of the breast is encouraged during treatment.",
	},
	{
		ID:       "q-ppd",
		ModuleID: "module-8",
		TopicID:  "postpartum-mood",
		Prompt:   "A postpartum patient reports feelings of hopelessness and inability to care for her newborn. Which condition is most likely?",
		Options: []string{
			"Baby blues",
			"Postpartum depression",
			"Euphoria",
			"Postpartum psychosis",
		},
		Answer:    1,
		Rationale: "Persistent hopelessness is characteristic of postpartum depression; baby blues are transient and self-limiting.",
	},
	{
		ID:       "q-psychosis",
		ModuleID: "module-8",
		TopicID:  "postpartum-mood",
		Prompt:   "Which postpartum finding requires emergency psychiatric referral?",
		Options: []string{
			"Tearfulness on day 4",
			"Difficulty sleeping when the baby sleeps",
			"Hallucinations and thoughts of harming the infant",
			"Appetite fluctuations",
		},
		Answer:    2,
		Rationale: "Hallucinations or harm ideation indicate postpartum psychosis, a psychiatric emergency.",
	},
}
