package content

import "github.com/obrev/obrev/internal/scenario"

// Scenarios returns the built-in emergency scenarios.
func Scenarios() []scenario.Definition {
	return seedScenarios
}

// ScenarioByID looks up a scenario, nil if absent.
func ScenarioByID(id string) *scenario.Definition {
	for i := range seedScenarios {
		if seedScenarios[i].ID == id {
			return &seedScenarios[i]
		}
	}
	return nil
}

var seedScenarios = []scenario.Definition{
	{
		ID:          "shoulder-dystocia",
		ModuleID:    "module-7",
		Title:       "Shoulder Dystocia",
		Description: "Manage an impacted anterior shoulder during delivery",
		Setting:     "Labor room, head delivered, turtle sign observed",
		TimeLimit:   180,
		Root:        "recognize",
		Nodes: []scenario.Node{
			{
				ID:     "recognize",
				Prompt: "The fetal head retracts against the perineum after delivery (turtle sign). What is your first action?",
				Vitals: scenario.Vitals{
					FHR: "88 bpm", MaternalHR: "118 bpm", BP: "128/82", O2Sat: "98%",
					Contractions: "active pushing",
				},
				Options: []scenario.Option{
					{
						ID: "call-help", Label: "Call for help and note the time",
						Correct:  true,
						Feedback: "Right. Dystocia is a team emergency and a timed one.",
						Next:     "maneuver",
					},
					{
						ID: "fundal", Label: "Apply fundal pressure",
						Feedback: "Fundal pressure further impacts the shoulder and risks uterine rupture.",
						Next:     "maneuver",
					},
					{
						ID: "pull", Label: "Apply firm downward traction on the head",
						Feedback: "Excess traction risks brachial plexus injury.",
						Next:     "maneuver",
					},
				},
			},
			{
				ID:     "maneuver",
				Prompt: "Help is on the way. Which maneuver do you initiate?",
				Vitals: scenario.Vitals{
					FHR: "80 bpm", MaternalHR: "124 bpm", BP: "126/80", O2Sat: "97%",
					Contractions: "active pushing",
				},
				Options: []scenario.Option{
					{
						ID: "mcroberts", Label: "McRoberts: hyperflex maternal hips",
						Correct:  true,
						Feedback: "McRoberts straightens the sacrum and resolves most dystocias.",
						Next:     "pressure",
					},
					{
						ID: "zavanelli", Label: "Zavanelli: push the head back in",
						Feedback: "Zavanelli is a last resort before cesarean, not a first move.",
						Next:     "pressure",
					},
					{
						ID: "episiotomy", Label: "Cut a large episiotomy immediately",
						Feedback: "The obstruction is bony, not soft tissue. Episiotomy alone does not help.",
						Next:     "pressure",
					},
				},
			},
			{
				ID:     "pressure",
				Prompt: "The shoulder is still impacted after McRoberts. What do you add?",
				Vitals: scenario.Vitals{
					FHR: "76 bpm", MaternalHR: "130 bpm", BP: "124/78", O2Sat: "97%",
					Contractions: "active pushing",
				},
				Options: []scenario.Option{
					{
						ID: "suprapubic", Label: "Suprapubic pressure over the anterior shoulder",
						Correct:  true,
						Feedback: "Suprapubic pressure adducts the shoulder under the pubic bone. The baby delivers.",
					},
					{
						ID: "fundal2", Label: "Fundal pressure with the next contraction",
						Feedback: "Never fundal pressure in dystocia.",
					},
					{
						ID: "wait", Label: "Wait for the next contraction and pull harder",
						Feedback: "Time is fetal oxygen. Traction alone injures the plexus.",
					},
				},
			},
		},
	},
	{
		ID:          "cord-prolapse",
		ModuleID:    "module-7",
		Title:       "Umbilical Cord Prolapse",
		Description: "Respond to a prolapsed cord after spontaneous rupture of membranes",
		Setting:     "Antepartum unit, membranes just ruptured, cord visible at introitus",
		TimeLimit:   150,
		Root:        "position",
		Nodes: []scenario.Node{
			{
				ID:     "position",
				Prompt: "You see a loop of pulsating cord at the introitus. What is your immediate action?",
				Vitals: scenario.Vitals{
					FHR: "92 bpm, variable decels", MaternalHR: "96 bpm", BP: "118/74", O2Sat: "99%",
				},
				Options: []scenario.Option{
					{
						ID: "knee-chest", Label: "Knee-chest position and elevate the presenting part",
						Correct:  true,
						Feedback: "Gravity plus manual elevation relieves cord compression.",
						Next:     "cord-care",
					},
					{
						ID: "reinsert", Label: "Gently reinsert the cord",
						Feedback: "Handling the cord causes vasospasm. Never reinsert.",
						Next:     "cord-care",
					},
					{
						ID: "supine", Label: "Lay the patient flat and start oxygen",
						Feedback: "Oxygen helps, but supine positioning increases compression.",
						Next:     "cord-care",
					},
				},
			},
			{
				ID:     "cord-care",
				Prompt: "The cord remains outside the vagina. How do you protect it?",
				Vitals: scenario.Vitals{
					FHR: "104 bpm", MaternalHR: "98 bpm", BP: "116/72", O2Sat: "99%",
				},
				Options: []scenario.Option{
					{
						ID: "moist", Label: "Cover with warm saline-moistened gauze",
						Correct:  true,
						Feedback: "Moist coverage prevents drying and vasospasm.",
						Next:     "prepare",
					},
					{
						ID: "dry", Label: "Wrap with dry sterile gauze",
						Feedback: "Dry dressings promote vasospasm.",
						Next:     "prepare",
					},
					{
						ID: "clamp", Label: "Clamp the exposed loop",
						Feedback: "Clamping cuts off the fetal blood supply entirely.",
						Next:     "prepare",
					},
				},
			},
			{
				ID:     "prepare",
				Prompt: "The provider is en route. What do you prepare for?",
				Vitals: scenario.Vitals{
					FHR: "112 bpm", MaternalHR: "100 bpm", BP: "114/70", O2Sat: "99%",
				},
				Options: []scenario.Option{
					{
						ID: "cesarean", Label: "Emergency cesarean birth",
						Correct:  true,
						Feedback: "With a viable fetus and persistent prolapse, immediate cesarean is the plan.",
					},
					{
						ID: "oxytocin", Label: "Oxytocin augmentation for rapid vaginal birth",
						Feedback: "Stronger contractions worsen compression.",
					},
					{
						ID: "observe", Label: "Continuous monitoring until decels resolve",
						Feedback: "Watchful waiting sacrifices fetal reserve.",
					},
				},
			},
		},
	},
	{
		ID:          "postpartum-hemorrhage",
		ModuleID:    "module-8",
		Title:       "Postpartum Hemorrhage",
		Description: "Contain heavy bleeding in the first hour after birth",
		Setting:     "Recovery, 40 minutes after vaginal birth",
		TimeLimit:   180,
		Root:        "assess",
		Nodes: []scenario.Node{
			{
				ID:     "assess",
				Prompt: "The pad is saturated in 15 minutes and the fundus feels boggy. First action?",
				Vitals: scenario.Vitals{
					MaternalHR: "108 bpm", BP: "104/66", O2Sat: "98%",
				},
				Options: []scenario.Option{
					{
						ID: "massage", Label: "Massage the fundus",
						Correct:  true,
						Feedback: "Atony is the likeliest cause; massage is the first-line response.",
						Next:     "bladder",
					},
					{
						ID: "notify", Label: "Leave to notify the provider",
						Feedback: "Do not leave an actively bleeding patient; intervene first.",
						Next:     "bladder",
					},
					{
						ID: "pad", Label: "Replace the pad and recheck in 15 minutes",
						Feedback: "Saturation in 15 minutes is hemorrhage, not lochia.",
						Next:     "bladder",
					},
				},
			},
			{
				ID:     "bladder",
				Prompt: "The fundus firms with massage but is deviated to the right. What next?",
				Vitals: scenario.Vitals{
					MaternalHR: "112 bpm", BP: "100/62", O2Sat: "98%",
				},
				Options: []scenario.Option{
					{
						ID: "void", Label: "Assist to void or catheterize",
						Correct:  true,
						Feedback: "A full bladder displaces the uterus and prevents contraction.",
						Next:     "meds",
					},
					{
						ID: "ice", Label: "Apply an ice pack to the perineum",
						Feedback: "Ice treats perineal edema, not uterine deviation.",
						Next:     "meds",
					},
					{
						ID: "ambulate", Label: "Ambulate the patient to the bathroom unassisted",
						Feedback: "Orthostatic collapse is likely during active hemorrhage.",
						Next:     "meds",
					},
				},
			},
			{
				ID:     "meds",
				Prompt: "Bleeding continues despite a firm midline fundus. The provider orders a uterotonic. Which do you question for a patient with asthma?",
				Vitals: scenario.Vitals{
					MaternalHR: "118 bpm", BP: "96/58", O2Sat: "97%",
				},
				Options: []scenario.Option{
					{
						ID: "hemabate", Label: "Carboprost (Hemabate)",
						Correct:  true,
						Feedback: "Carboprost can trigger bronchospasm and is avoided in asthma.",
					},
					{
						ID: "pitocin", Label: "Oxytocin (Pitocin)",
						Feedback: "Oxytocin is first-line and safe with asthma.",
					},
					{
						ID: "misoprostol", Label: "Misoprostol (Cytotec)",
						Feedback: "Misoprostol is not contraindicated in asthma.",
					},
				},
			},
		},
	},
}
