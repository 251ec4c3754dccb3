package content

import "testing"

func TestModulesWellFormed(t *testing.T) {
	mods := Modules()
	if len(mods) == 0 {
		t.Fatal("no modules")
	}
	seen := map[string]bool{}
	for _, m := range mods {
		if m.ID == "" || m.Title == "" {
			t.Errorf("module %+v missing ID or title", m)
		}
		if seen[m.ID] {
			t.Errorf("duplicate module %q", m.ID)
		}
		seen[m.ID] = true
		if len(m.Topics) == 0 {
			t.Errorf("module %q has no topics", m.ID)
		}
		for _, topic := range m.Topics {
			if topic.ID == "" || len(topic.KeyPoints) == 0 {
				t.Errorf("module %q topic %q incomplete", m.ID, topic.ID)
			}
		}
	}
}

func TestModuleLookup(t *testing.T) {
	m := ModuleByID("module-7")
	if m == nil {
		t.Fatal("module-7 not found")
	}
	if m.Topic("dystocia") == nil {
		t.Error("dystocia topic not found in module-7")
	}
	if ModuleByID("module-99") != nil {
		t.Error("expected nil for unknown module")
	}
}

func TestQuestionsReferToKnownModules(t *testing.T) {
	for _, q := range Questions("", "") {
		m := ModuleByID(q.ModuleID)
		if m == nil {
			t.Errorf("question %q refers to unknown module %q", q.ID, q.ModuleID)
			continue
		}
		if q.TopicID != "" && m.Topic(q.TopicID) == nil {
			t.Errorf("question %q refers to unknown topic %q", q.ID, q.TopicID)
		}
		if q.Answer < 0 || q.Answer >= len(q.Options) {
			t.Errorf("question %q answer index %d out of range", q.ID, q.Answer)
		}
		if q.Rationale == "" {
			t.Errorf("question %q has no rationale", q.ID)
		}
	}
}

func TestQuestionFiltering(t *testing.T) {
	all := Questions("", "")
	mod7 := Questions("module-7", "")
	prom := Questions("module-7", "prom")

	if len(mod7) == 0 || len(mod7) >= len(all) {
		t.Errorf("module filter returned %d of %d", len(mod7), len(all))
	}
	if len(prom) == 0 || len(prom) >= len(mod7) {
		t.Errorf("topic filter returned %d of %d", len(prom), len(mod7))
	}
	for _, q := range prom {
		if q.TopicID != "prom" {
			t.Errorf("filtered question %q has topic %q", q.ID, q.TopicID)
		}
	}
}

func TestSeedScenariosValidate(t *testing.T) {
	scenarios := Scenarios()
	if len(scenarios) < 3 {
		t.Fatalf("expected at least 3 seed scenarios, got %d", len(scenarios))
	}
	for i := range scenarios {
		if err := scenarios[i].Validate(); err != nil {
			t.Errorf("scenario %q: %v", scenarios[i].ID, err)
		}
		if ModuleByID(scenarios[i].ModuleID) == nil {
			t.Errorf("scenario %q refers to unknown module %q",
				scenarios[i].ID, scenarios[i].ModuleID)
		}
	}
}

func TestAchievementCatalog(t *testing.T) {
	for _, a := range Achievements() {
		if a.ID == "" || a.Title == "" || a.XP <= 0 {
			t.Errorf("achievement %+v incomplete", a)
		}
	}
	if AchievementByID("perfect-quiz") == nil {
		t.Error("perfect-quiz missing from catalog")
	}
}
