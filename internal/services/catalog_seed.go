package services

// Catalog bundles the full static registry for seeding a store.
type Catalog struct {
	Questions []*Question
	Modules   []*Module
	Days      []*DayConfiguration
}

var (
	yesNoOptions   = []string{"Yes", "No"}
	yesNoDKOptions = []string{"Yes", "No", "Don't Know"}
	frequency4     = []string{"Not at all", "Several days", "More than half the days", "Nearly every day"}
	psqiFrequency  = []string{"Not during the past month", "Less than once a week", "Once or twice a week", "Three or more times a week"}
	neverToAlways  = []string{"Never", "Rarely", "Sometimes", "Often", "Always"}
	neverToDaily   = []string{"Never", "Rarely", "Sometimes", "Often", "Daily"}
)

func strptr(s string) *string { return &s }

// DefaultCatalog returns the built-in question registry, module layout and
// 15-day plan. Option order inside each question is load-bearing: gateway
// thresholds and the evaluator reference option positions.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Questions: defaultQuestions(),
		Modules:   defaultModules(),
		Days:      defaultDays(),
	}
}

func defaultQuestions() []*Question {
	qs := []*Question{
		// Stanford sleep log, asked every day.
		{ID: "SL_BEDTIME", Text: "What time did you go to bed last night?", Pillar: PillarSleepLog, Tier: TierCore, Type: QuestionTime, HelpText: "Your subjective perception - don't check your wearable device", Required: true, Group: "sleep_log"},
		{ID: "SL_ASLEEP_TIME", Text: "What time did you fall asleep last night?", Pillar: PillarSleepLog, Tier: TierCore, Type: QuestionTime, HelpText: "Your best estimate - don't check your wearable", Required: true, Group: "sleep_log"},
		{ID: "SL_AWAKENINGS", Text: "How many times did you wake up during the night?", Pillar: PillarSleepLog, Tier: TierCore, Type: QuestionNumberScroll, MinValue: 0, MaxValue: 20, DefaultValue: 0, Required: true, Group: "sleep_log"},
		{ID: "SL_WAKE_TIME", Text: "What time did you wake up this morning?", Pillar: PillarSleepLog, Tier: TierCore, Type: QuestionTime, HelpText: "Final awakening - don't check your wearable", Required: true, Group: "sleep_log"},
		{ID: "SL_QUALITY", Text: "How would you rate your sleep quality last night?", Pillar: PillarSleepLog, Tier: TierCore, Type: QuestionScale, ScaleMin: 1, ScaleMax: 10, ScaleMinLabel: "Very Poor", ScaleMaxLabel: "Excellent", Required: true, Group: "sleep_log"},

		// Day 1: demographics and sleep quality core.
		{ID: "D1", Text: "What is your full name?", Pillar: PillarSocial, Tier: TierCore, Type: QuestionText, Required: true},
		{ID: "D2", Text: "What is your date of birth?", Pillar: PillarSocial, Tier: TierCore, Type: QuestionDate, Required: true},
		{ID: "D4", Text: "What is your sex assigned at birth?", Pillar: PillarMetabolic, Tier: TierCore, Type: QuestionSingleSelect, Options: []string{"Male", "Female", "Other"}, Required: true},
		{ID: "D5", Text: "What is your height?", Pillar: PillarMetabolic, Tier: TierCore, Type: QuestionNumber, MinValue: 100, MaxValue: 250, Unit: "cm", Required: true},
		{ID: "D6", Text: "What is your weight?", Pillar: PillarMetabolic, Tier: TierCore, Type: QuestionNumber, MinValue: 30, MaxValue: 300, Unit: "kg", Required: true},
		{ID: "1", Text: "Overall sleep quality in past month", Pillar: PillarSleepQuality, Tier: TierCore, Type: QuestionScale, ScaleMin: 1, ScaleMax: 10, ScaleMinLabel: "Very Poor", ScaleMaxLabel: "Excellent", Required: true, IsGateway: true, GatewayType: GatewayPoorSleepQuality, GatewayThreshold: 5},
		{ID: "2", Text: "How often do you feel refreshed after sleep?", Pillar: PillarSleepQuality, Tier: TierCore, Type: QuestionSingleSelect, Options: neverToAlways, Required: true},
		{ID: "3", Text: "Do you have trouble falling asleep, staying asleep, or waking too early?", Pillar: PillarSleepQuality, Tier: TierCore, Type: QuestionYesNo, Options: yesNoOptions, Required: true, IsGateway: true, GatewayType: GatewayInsomnia},
		{ID: "PSQI_1", Text: "During the past month, when have you usually gone to bed at night?", Pillar: PillarSleepQuality, Tier: TierCore, Type: QuestionTime, HelpText: "Your subjective perception - don't check your wearable device", Required: true},
		{ID: "PSQI_2", Text: "During the past month, how long (in minutes) has it usually taken you to fall asleep each night?", Pillar: PillarSleepQuality, Tier: TierCore, Type: QuestionMinutesScroll, MinValue: 0, MaxValue: 180, Unit: "minutes", Required: true, IsGateway: true, GatewayType: GatewayInsomnia, GatewayThreshold: 30},
		{ID: "PSQI_3", Text: "During the past month, when have you usually gotten up in the morning?", Pillar: PillarSleepQuality, Tier: TierCore, Type: QuestionTime, HelpText: "Your subjective perception - don't check your wearable", Required: true},
		{ID: "PSQI_4", Text: "During the past month, how many hours of actual sleep did you get at night?", Pillar: PillarSleepQuality, Tier: TierCore, Type: QuestionNumber, MinValue: 0, MaxValue: 15, Step: 0.5, Unit: "hours", Required: true},

		// Day 2: PSQI completion, quantity and regularity.
		{ID: "PSQI_5a", Text: "How often have you had trouble sleeping because you cannot get to sleep within 30 minutes?", Pillar: PillarSleepQuality, Tier: TierCore, Type: QuestionSingleSelect, Options: psqiFrequency, Required: true, IsGateway: true, GatewayType: GatewayInsomnia, GatewayThreshold: 2},
		{ID: "PSQI_5b", Text: "How often have you had trouble sleeping because you wake up in the middle of the night or early morning?", Pillar: PillarSleepQuality, Tier: TierCore, Type: QuestionSingleSelect, Options: psqiFrequency, Required: true, IsGateway: true, GatewayType: GatewayInsomnia, GatewayThreshold: 2},
		{ID: "PSQI_5c", Text: "How often have you had trouble sleeping because you have to get up to use the bathroom?", Pillar: PillarSleepQuality, Tier: TierCore, Type: QuestionSingleSelect, Options: psqiFrequency, Required: true},
		{ID: "12A", Text: "How many times do you typically wake up during the night?", Pillar: PillarSleepQuantity, Tier: TierCore, Type: QuestionNumber, MinValue: 0, MaxValue: 15, Required: true},
		{ID: "12B", Text: "When you wake up at night, what is the MAIN reason?", Pillar: PillarSleepQuantity, Tier: TierCore, Type: QuestionSingleSelect, Options: []string{"Bathroom needs", "Pain/discomfort", "Noise", "Light", "Hot/cold", "Dreams/nightmares", "Worry/stress", "Other"}, Required: true},
		{ID: "7", Text: "What time do you usually go to bed on weekdays?", Pillar: PillarSleepRegularity, Tier: TierCore, Type: QuestionTime, Required: true},
		{ID: "8", Text: "What time do you usually wake up on weekdays?", Pillar: PillarSleepRegularity, Tier: TierCore, Type: QuestionTime, Required: true},
		{ID: "9", Text: "What time do you usually go to bed on weekends?", Pillar: PillarSleepRegularity, Tier: TierCore, Type: QuestionTime, Required: true},
		{ID: "10", Text: "What time do you usually wake up on weekends?", Pillar: PillarSleepRegularity, Tier: TierCore, Type: QuestionTime, Required: true},
		{ID: "REG_1", Text: "Do you use an alarm clock on weekdays?", Pillar: PillarSleepRegularity, Tier: TierCore, Type: QuestionSingleSelect, Options: []string{"Never", "Rarely", "Sometimes", "Usually", "Always"}, Required: true},
		{ID: "REG_2", Text: "How much does your bedtime vary from night to night?", Pillar: PillarSleepRegularity, Tier: TierCore, Type: QuestionSingleSelect, Options: []string{"Less than 15 minutes", "15-30 minutes", "30-60 minutes", "1-2 hours", "More than 2 hours"}, Required: true, IsGateway: true, GatewayType: GatewaySleepTiming, GatewayThreshold: 3},

		// Day 3: timing habits and mental-health gateways.
		{ID: "11", Text: "How often do you get morning sunlight exposure within 1 hour of waking?", Pillar: PillarSleepTiming, Tier: TierCore, Type: QuestionSingleSelect, Options: neverToDaily, Required: true},
		{ID: "12", Text: "How many hours per day do you spend looking at screens for work?", Pillar: PillarSocial, Tier: TierCore, Type: QuestionNumber, MinValue: 0, MaxValue: 18, Unit: "hours", Required: true},
		{ID: "13", Text: "How often do you use electronic devices within 1 hour of bedtime?", Pillar: PillarSleepTiming, Tier: TierCore, Type: QuestionSingleSelect, Options: neverToAlways, Required: true},
		{ID: "14", Text: "On a scale of 1-10, how would you rate your current stress level?", Pillar: PillarMentalHealth, Tier: TierCore, Type: QuestionScale, ScaleMin: 1, ScaleMax: 10, ScaleMinLabel: "No stress", ScaleMaxLabel: "Extremely stressed", Required: true},
		{ID: "15", Text: "Over the past 2 weeks, how often have you felt down, depressed, or hopeless?", Pillar: PillarMentalHealth, Tier: TierCore, Type: QuestionSingleSelect, Options: frequency4, Required: true, IsGateway: true, GatewayType: GatewayDepression, GatewayThreshold: 2},
		{ID: "16", Text: "Over the past 2 weeks, how often have you felt nervous, anxious, or on edge?", Pillar: PillarMentalHealth, Tier: TierCore, Type: QuestionSingleSelect, Options: frequency4, Required: true, IsGateway: true, GatewayType: GatewayAnxiety, GatewayThreshold: 2},
		{ID: "17", Text: "Do you feel excessively tired or sleepy during the day?", Pillar: PillarCognitive, Tier: TierCore, Type: QuestionSingleSelect, Options: neverToAlways, Required: true, IsGateway: true, GatewayType: GatewayExcessiveSleepiness, GatewayThreshold: 3},
		{ID: "18", Text: "Do you experience memory problems, difficulty concentrating, or mental fog?", Pillar: PillarCognitive, Tier: TierCore, Type: QuestionYesNo, Options: yesNoOptions, Required: true, IsGateway: true, GatewayType: GatewayCognitive},

		// Day 4: physical gateways and metabolic basics.
		{ID: "19", Text: "Do you snore loudly (louder than talking or loud enough to be heard through closed doors)?", Pillar: PillarPhysical, Tier: TierCore, Type: QuestionYesNoDontKnow, Options: yesNoDKOptions, Required: true, IsGateway: true, GatewayType: GatewayOSA},
		{ID: "20", Text: "Has anyone observed you stop breathing during your sleep?", Pillar: PillarPhysical, Tier: TierCore, Type: QuestionYesNoDontKnow, Options: yesNoDKOptions, Required: true, IsGateway: true, GatewayType: GatewayOSA},
		{ID: "21", Text: "Do you often feel tired, fatigued, or sleepy during daytime?", Pillar: PillarPhysical, Tier: TierCore, Type: QuestionYesNo, Options: yesNoOptions, Required: true},
		{ID: "22", Text: "Do you experience pain that affects your sleep?", Pillar: PillarPhysical, Tier: TierCore, Type: QuestionYesNo, Options: yesNoOptions, Required: true, IsGateway: true, GatewayType: GatewayPain},
		{ID: "23", Text: "On average, what is your pain level?", Pillar: PillarPhysical, Tier: TierCore, Type: QuestionScale, ScaleMin: 0, ScaleMax: 10, ScaleMinLabel: "No pain", ScaleMaxLabel: "Worst possible", Required: true, IsGateway: true, GatewayType: GatewayPain, GatewayThreshold: 4, Conditional: &ConditionalLogic{QuestionID: "22", Equals: strptr("Yes")}},
		{ID: "24", Text: "How often do you exercise or engage in physical activity?", Pillar: PillarPhysical, Tier: TierCore, Type: QuestionSingleSelect, Options: []string{"Never", "Less than once a week", "1-2 times per week", "3-4 times per week", "5+ times per week"}, Required: true},
		{ID: "25", Text: "What time of day do you typically exercise?", Pillar: PillarPhysical, Tier: TierCore, Type: QuestionSingleSelect, Options: []string{"Morning", "Afternoon", "Evening", "Night", "Varies", "I don't exercise"}, Required: true},
		{ID: "26", Text: "Do you have diabetes or pre-diabetes?", Pillar: PillarMetabolic, Tier: TierCore, Type: QuestionYesNoDontKnow, Options: yesNoDKOptions, Required: true},
		{ID: "27", Text: "Do you have or are you being treated for high blood pressure?", Pillar: PillarMetabolic, Tier: TierCore, Type: QuestionYesNo, Options: yesNoOptions, Required: true},

		// Day 5: nutrition and social factors.
		{ID: "29", Text: "Do you consume caffeine (coffee, tea, energy drinks)?", Pillar: PillarNutritional, Tier: TierCore, Type: QuestionSingleSelect, Options: neverToDaily, Required: true},
		{ID: "30", Text: "If you consume caffeine, how many cups/servings per day?", Pillar: PillarNutritional, Tier: TierCore, Type: QuestionNumber, MinValue: 0, MaxValue: 20, Conditional: &ConditionalLogic{QuestionID: "29", Equals: strptr("Never")}},
		{ID: "31", Text: "What time is your last caffeine intake typically?", Pillar: PillarNutritional, Tier: TierCore, Type: QuestionTime},
		{ID: "32", Text: "How often do you consume alcohol?", Pillar: PillarNutritional, Tier: TierCore, Type: QuestionSingleSelect, Options: []string{"Never", "Less than monthly", "Monthly", "Weekly", "Daily"}, Required: true},
		{ID: "33", Text: "If you drink alcohol, when is it typically in relation to bedtime?", Pillar: PillarNutritional, Tier: TierCore, Type: QuestionSingleSelect, Options: []string{"More than 4 hours before bed", "2-4 hours before bed", "Within 2 hours of bed", "I don't drink alcohol"}, Required: true},
		{ID: "34", Text: "Do you notice your diet affects your sleep quality?", Pillar: PillarNutritional, Tier: TierCore, Type: QuestionSingleSelect, Options: []string{"Not at all", "Slightly", "Moderately", "Quite a bit", "Extremely"}, Required: true, IsGateway: true, GatewayType: GatewayDietImpact, GatewayThreshold: 2},
		{ID: "35", Text: "Do you share your bedroom with a partner?", Pillar: PillarSocial, Tier: TierCore, Type: QuestionYesNo, Options: yesNoOptions, Required: true},
		{ID: "36", Text: "If yes, do they snore or disturb your sleep?", Pillar: PillarSocial, Tier: TierCore, Type: QuestionYesNo, Options: yesNoOptions, Conditional: &ConditionalLogic{QuestionID: "35", Equals: strptr("Yes")}},
		{ID: "37", Text: "Do you have young children or infants at home?", Pillar: PillarSocial, Tier: TierCore, Type: QuestionYesNo, Options: yesNoOptions, Required: true},
		{ID: "53E", Text: "On a scale of 1-10, how would you rate your current work-related stress?", Pillar: PillarSocial, Tier: TierCore, Type: QuestionScale, ScaleMin: 1, ScaleMax: 10, ScaleMinLabel: "No stress", ScaleMaxLabel: "Extreme stress", Required: true},
	}

	qs = append(qs, isiQuestions()...)
	qs = append(qs, essQuestions()...)
	qs = append(qs, phq9Questions()...)
	qs = append(qs, gad7Questions()...)
	qs = append(qs, stopBangQuestions()...)
	return qs
}

func isiQuestions() []*Question {
	texts := []struct{ id, text, minLabel, maxLabel string }{
		{"ISI_1", "Difficulty falling asleep - rate severity (0-4)", "None", "Very Severe"},
		{"ISI_2", "Difficulty staying asleep - rate severity (0-4)", "None", "Very Severe"},
		{"ISI_3", "Problems waking up too early - rate severity (0-4)", "None", "Very Severe"},
		{"ISI_4", "How SATISFIED/dissatisfied are you with your current sleep pattern?", "Very Satisfied", "Very Dissatisfied"},
		{"ISI_5", "How NOTICEABLE to others do you think your sleeping problem is in terms of impairing the quality of your life?", "Not at all", "Very Much"},
		{"ISI_6", "How WORRIED/distressed are you about your current sleep problem?", "Not at all", "Very Much"},
		{"ISI_7", "To what extent do you consider your sleep problem to INTERFERE with your daily functioning?", "Not at all", "Very Much"},
	}
	out := make([]*Question, 0, len(texts))
	for _, t := range texts {
		out = append(out, &Question{
			ID: t.id, Text: t.text, Pillar: PillarSleepQuality, Tier: TierExpansion,
			Type: QuestionScale, ScaleMin: 0, ScaleMax: 4,
			ScaleMinLabel: t.minLabel, ScaleMaxLabel: t.maxLabel, Required: true,
		})
	}
	return out
}

func essQuestions() []*Question {
	situations := []struct{ id, text string }{
		{"ESS_1", "How likely are you to doze off: Sitting and reading?"},
		{"ESS_2", "How likely are you to doze off: Watching TV?"},
		{"ESS_3", "How likely are you to doze off: Sitting inactive in a public place?"},
		{"ESS_4", "How likely are you to doze off: As a passenger in a car for an hour?"},
		{"ESS_5", "How likely are you to doze off: Lying down to rest in the afternoon?"},
		{"ESS_6", "How likely are you to doze off: Sitting and talking to someone?"},
		{"ESS_7", "How likely are you to doze off: Sitting quietly after a lunch without alcohol?"},
		{"ESS_8", "How likely are you to doze off: In a car, while stopped for a few minutes in traffic?"},
	}
	out := make([]*Question, 0, len(situations))
	for _, s := range situations {
		out = append(out, &Question{
			ID: s.id, Text: s.text, Pillar: PillarCognitive, Tier: TierExpansion,
			Type: QuestionScale, ScaleMin: 0, ScaleMax: 3,
			ScaleMinLabel: "Would never doze", ScaleMaxLabel: "High chance", Required: true,
		})
	}
	return out
}

func phq9Questions() []*Question {
	items := []struct{ id, text string }{
		{"PHQ9_1", "Over the last 2 weeks: Little interest or pleasure in doing things?"},
		{"PHQ9_2", "Over the last 2 weeks: Feeling down, depressed, or hopeless?"},
		{"PHQ9_3", "Over the last 2 weeks: Trouble falling or staying asleep, or sleeping too much?"},
		{"PHQ9_4", "Over the last 2 weeks: Feeling tired or having little energy?"},
		{"PHQ9_5", "Over the last 2 weeks: Poor appetite or overeating?"},
		{"PHQ9_6", "Over the last 2 weeks: Feeling bad about yourself - or that you are a failure?"},
		{"PHQ9_7", "Over the last 2 weeks: Trouble concentrating on things?"},
		{"PHQ9_8", "Over the last 2 weeks: Moving or speaking slowly, or being fidgety/restless?"},
		{"PHQ9_9", "Over the last 2 weeks: Thoughts that you would be better off dead or of hurting yourself?"},
	}
	out := make([]*Question, 0, len(items))
	for _, it := range items {
		out = append(out, &Question{
			ID: it.id, Text: it.text, Pillar: PillarMentalHealth, Tier: TierExpansion,
			Type: QuestionSingleSelect, Options: frequency4, Required: true,
		})
	}
	return out
}

func gad7Questions() []*Question {
	items := []struct{ id, text string }{
		{"GAD7_1", "Over the last 2 weeks: Feeling nervous, anxious, or on edge?"},
		{"GAD7_2", "Over the last 2 weeks: Not being able to stop or control worrying?"},
		{"GAD7_3", "Over the last 2 weeks: Worrying too much about different things?"},
		{"GAD7_4", "Over the last 2 weeks: Trouble relaxing?"},
		{"GAD7_5", "Over the last 2 weeks: Being so restless that it is hard to sit still?"},
		{"GAD7_6", "Over the last 2 weeks: Becoming easily annoyed or irritable?"},
		{"GAD7_7", "Over the last 2 weeks: Feeling afraid, as if something awful might happen?"},
	}
	out := make([]*Question, 0, len(items))
	for _, it := range items {
		out = append(out, &Question{
			ID: it.id, Text: it.text, Pillar: PillarMentalHealth, Tier: TierExpansion,
			Type: QuestionSingleSelect, Options: frequency4, Required: true,
		})
	}
	return out
}

func stopBangQuestions() []*Question {
	items := []struct{ id, text, help string }{
		{"SB_1", "Do you Snore loudly (louder than talking or loud enough to be heard through closed doors)?", ""},
		{"SB_2", "Do you often feel Tired, fatigued, or sleepy during daytime?", ""},
		{"SB_3", "Has anyone Observed you stop breathing during your sleep?", ""},
		{"SB_4", "Do you have or are you being treated for high blood Pressure?", ""},
		{"SB_5", "BMI more than 35 kg/m²?", "Calculated from your height and weight"},
		{"SB_6", "Age over 50 years old?", ""},
		{"SB_7", "Neck circumference greater than 40cm (15.75 inches)?", ""},
		{"SB_8", "Gender = Male?", ""},
	}
	out := make([]*Question, 0, len(items))
	for _, it := range items {
		out = append(out, &Question{
			ID: it.id, Text: it.text, Pillar: PillarPhysical, Tier: TierExpansion,
			Type: QuestionYesNo, Options: yesNoOptions, HelpText: it.help, Required: true,
		})
	}
	return out
}

func defaultModules() []*Module {
	return []*Module{
		{ID: SleepLogModuleID, Name: "Stanford Sleep Log", Description: "Daily sleep diary, asked every day", Pillar: PillarSleepLog, Tier: TierCore, EstimatedMinutes: 2, QuestionIDs: []string{"SL_BEDTIME", "SL_ASLEEP_TIME", "SL_AWAKENINGS", "SL_WAKE_TIME", "SL_QUALITY"}},
		{ID: "core_social", Name: "Demographics", Pillar: PillarSocial, Tier: TierCore, EstimatedMinutes: 2, QuestionIDs: []string{"D1", "D2"}},
		{ID: "core_metabolic", Name: "Body Basics", Pillar: PillarMetabolic, Tier: TierCore, EstimatedMinutes: 2, QuestionIDs: []string{"D4", "D5", "D6"}},
		{ID: "core_sleep_quality_part1", Name: "Sleep Quality Overview", Pillar: PillarSleepQuality, Tier: TierCore, EstimatedMinutes: 8, QuestionIDs: []string{"1", "2", "3", "PSQI_1", "PSQI_2", "PSQI_3", "PSQI_4"}},
		{ID: "core_sleep_quality_part2", Name: "PSQI Completion", Pillar: PillarSleepQuality, Tier: TierCore, EstimatedMinutes: 4, QuestionIDs: []string{"PSQI_5a", "PSQI_5b", "PSQI_5c"}},
		{ID: "core_sleep_quantity", Name: "Night Awakenings", Pillar: PillarSleepQuantity, Tier: TierCore, EstimatedMinutes: 2, QuestionIDs: []string{"12A", "12B"}},
		{ID: "core_sleep_regularity", Name: "Sleep Patterns", Pillar: PillarSleepRegularity, Tier: TierCore, EstimatedMinutes: 5, QuestionIDs: []string{"7", "8", "9", "10", "REG_1", "REG_2"}},
		{ID: "core_sleep_timing", Name: "Light & Screens", Pillar: PillarSleepTiming, Tier: TierCore, EstimatedMinutes: 3, QuestionIDs: []string{"11", "12", "13"}},
		{ID: "gateway_mental_health", Name: "Mood & Focus Check", Pillar: PillarMentalHealth, Tier: TierCore, EstimatedMinutes: 5, QuestionIDs: []string{"14", "15", "16", "17", "18"}},
		{ID: "gateway_physical", Name: "Breathing & Pain Check", Pillar: PillarPhysical, Tier: TierCore, EstimatedMinutes: 5, QuestionIDs: []string{"19", "20", "21", "22", "23"}},
		{ID: "core_physical", Name: "Activity & Metabolic Health", Pillar: PillarPhysical, Tier: TierCore, EstimatedMinutes: 4, QuestionIDs: []string{"24", "25", "26", "27"}},
		{ID: "core_nutritional", Name: "Caffeine, Alcohol & Diet", Pillar: PillarNutritional, Tier: TierCore, EstimatedMinutes: 5, QuestionIDs: []string{"29", "30", "31", "32", "33", "34"}},
		{ID: "core_social_part2", Name: "Household & Work Stress", Pillar: PillarSocial, Tier: TierCore, EstimatedMinutes: 2, QuestionIDs: []string{"35", "36", "37", "53E"}},
		{ID: "expansion_isi", Name: "Insomnia Severity Index", Pillar: PillarSleepQuality, Tier: TierExpansion, EstimatedMinutes: 8, QuestionIDs: []string{"ISI_1", "ISI_2", "ISI_3", "ISI_4", "ISI_5", "ISI_6", "ISI_7"}},
		{ID: "expansion_ess", Name: "Epworth Sleepiness Scale", Pillar: PillarCognitive, Tier: TierExpansion, EstimatedMinutes: 6, QuestionIDs: []string{"ESS_1", "ESS_2", "ESS_3", "ESS_4", "ESS_5", "ESS_6", "ESS_7", "ESS_8"}},
		{ID: "expansion_phq9", Name: "PHQ-9 Mood Screen", Pillar: PillarMentalHealth, Tier: TierExpansion, EstimatedMinutes: 7, QuestionIDs: []string{"PHQ9_1", "PHQ9_2", "PHQ9_3", "PHQ9_4", "PHQ9_5", "PHQ9_6", "PHQ9_7", "PHQ9_8", "PHQ9_9"}},
		{ID: "expansion_gad7_part1", Name: "GAD-7 Anxiety Screen (1 of 2)", Pillar: PillarMentalHealth, Tier: TierExpansion, EstimatedMinutes: 4, QuestionIDs: []string{"GAD7_1", "GAD7_2", "GAD7_3", "GAD7_4"}},
		{ID: "expansion_gad7_part2", Name: "GAD-7 Anxiety Screen (2 of 2)", Pillar: PillarMentalHealth, Tier: TierExpansion, EstimatedMinutes: 3, QuestionIDs: []string{"GAD7_5", "GAD7_6", "GAD7_7"}},
		{ID: "expansion_stop_bang", Name: "STOP-BANG Apnea Screen", Pillar: PillarPhysical, Tier: TierExpansion, EstimatedMinutes: 6, QuestionIDs: []string{"SB_1", "SB_2", "SB_3", "SB_4", "SB_5", "SB_6", "SB_7", "SB_8"}},
	}
}

func defaultDays() []*DayConfiguration {
	return []*DayConfiguration{
		{DayNumber: 1, Title: "Demographics & Sleep Quality", Description: "Foundation: basic demographics and sleep quality overview with gateway questions", EstimatedMinutes: 12, ModuleIDs: []string{"core_social", "core_metabolic", "core_sleep_quality_part1"}},
		{DayNumber: 2, Title: "PSQI & Sleep Patterns", Description: "PSQI completion plus sleep patterns: weekday vs weekend bedtimes and wake times", EstimatedMinutes: 11, ModuleIDs: []string{"core_sleep_quality_part2", "core_sleep_quantity", "core_sleep_regularity"}},
		{DayNumber: 3, Title: "Sleep Timing & Mental Health", Description: "Light exposure, screens, mental health and cognitive function gateways", EstimatedMinutes: 8, ModuleIDs: []string{"core_sleep_timing", "gateway_mental_health"}},
		{DayNumber: 4, Title: "Physical Health & Metabolic", Description: "OSA screening, pain assessment, exercise habits, metabolic health basics", EstimatedMinutes: 9, ModuleIDs: []string{"gateway_physical", "core_physical"}},
		{DayNumber: 5, Title: "Nutritional & Social", Description: "Caffeine, alcohol, diet impacts and social sleep factors complete the core", EstimatedMinutes: 7, ModuleIDs: []string{"core_nutritional", "core_social_part2"}},
		{DayNumber: 6, Title: "ISI - Insomnia Severity", Description: "Insomnia Severity Index assessment", EstimatedMinutes: 8, ModuleIDs: []string{"expansion_isi"}, RequiredGateways: []GatewayType{GatewayInsomnia, GatewayPoorSleepQuality}},
		{DayNumber: 7, Title: "Sleep Diary", Description: "Diary-only day", EstimatedMinutes: 3, ModuleIDs: []string{}},
		{DayNumber: 8, Title: "ESS - Daytime Sleepiness", Description: "Epworth Sleepiness Scale if daytime sleepiness triggered", EstimatedMinutes: 6, ModuleIDs: []string{"expansion_ess"}, RequiredGateways: []GatewayType{GatewayExcessiveSleepiness}},
		{DayNumber: 9, Title: "Sleep Diary", Description: "Diary-only day", EstimatedMinutes: 3, ModuleIDs: []string{}},
		{DayNumber: 10, Title: "PHQ-9 - Mood", Description: "Depression screen if mood gateway triggered", EstimatedMinutes: 7, ModuleIDs: []string{"expansion_phq9"}, RequiredGateways: []GatewayType{GatewayDepression}},
		{DayNumber: 11, Title: "GAD-7 Part 1", Description: "Anxiety screen, first half", EstimatedMinutes: 4, ModuleIDs: []string{"expansion_gad7_part1"}, RequiredGateways: []GatewayType{GatewayAnxiety}},
		{DayNumber: 12, Title: "GAD-7 Part 2", Description: "Anxiety screen, second half", EstimatedMinutes: 3, ModuleIDs: []string{"expansion_gad7_part2"}, RequiredGateways: []GatewayType{GatewayAnxiety}},
		{DayNumber: 13, Title: "Sleep Diary", Description: "Diary-only day", EstimatedMinutes: 3, ModuleIDs: []string{}},
		{DayNumber: 14, Title: "STOP-BANG - Sleep Apnea", Description: "Sleep apnea screen if OSA gateway triggered", EstimatedMinutes: 6, ModuleIDs: []string{"expansion_stop_bang"}, RequiredGateways: []GatewayType{GatewayOSA}},
		{DayNumber: 15, Title: "Wrap-Up", Description: "Final diary day, flexible completion", EstimatedMinutes: 3, ModuleIDs: []string{}},
	}
}
