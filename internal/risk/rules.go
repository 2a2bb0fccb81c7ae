package risk

import (
	"fmt"

	"nuros/internal/acoustic"
	"nuros/internal/config"
)

// Level is the categorical risk outcome of a rule.
type Level string

const (
	LevelLow    Level = "Low"
	LevelMedium Level = "Medium"
	LevelHigh   Level = "High"
)

// rank orders levels for comparisons; higher means worse.
func (l Level) rank() int {
	switch l {
	case LevelHigh:
		return 2
	case LevelMedium:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether l is as severe as other.
func (l Level) AtLeast(other Level) bool { return l.rank() >= other.rank() }

// Category groups conditions on the dashboard.
type Category string

const (
	CategoryNeurological Category = "Neurological"
	CategoryMentalHealth Category = "Mental Health"
	CategoryRespiratory  Category = "Respiratory"
	CategoryWomensHealth Category = "Women's Health"
)

// Finding is one evaluated condition. Produced fresh per evaluation call and
// never mutated.
type Finding struct {
	Category   Category `json:"category"`
	Condition  string   `json:"condition"`
	Level      Level    `json:"level"`
	Confidence float64  `json:"confidence"`
	Rationale  string   `json:"rationale"`
}

// clause is one rung of a rule ladder: a predicate over the feature vector,
// the level it assigns, the confidence range it draws from, and the
// rationale template embedding the measured values.
type clause struct {
	level     Level
	confLo    float64
	confHi    float64
	match     func(acoustic.FeatureVector) bool
	rationale func(acoustic.FeatureVector) string
}

// rule is an ordered ladder for one condition; the first matching clause
// wins and the final clause always matches.
type rule struct {
	category  Category
	condition string
	clauses   []clause
}

const (
	// severeRoughnessMultiplier scales the hormonal baselines to the level
	// treated as severe rather than marginal.
	severeRoughnessMultiplier = 1.5
	// thyroidCriticalOffsetDB is how far below the thyroid HNR baseline a
	// reading must fall to count as severe breathiness.
	thyroidCriticalOffsetDB = 3.0
)

func always(acoustic.FeatureVector) bool { return true }

// ruleTable builds the ordered screening table for one evaluation. The
// women's health baselines arrive already life-stage adjusted.
func ruleTable(t config.Thresholds, b stageBaselines) []rule {
	return []rule{
		{
			category:  CategoryNeurological,
			condition: "Parkinson's Disease",
			clauses: []clause{
				{
					level: LevelHigh, confLo: 85, confHi: 95,
					match: func(v acoustic.FeatureVector) bool { return v.JitterPercent > t.JitterHighPercent },
					rationale: func(v acoustic.FeatureVector) string {
						return fmt.Sprintf("Micro-Tremor Index (Jitter) is %.2f%%, which is above the baseline. This can indicate subtle vocal fold instability.", v.JitterPercent)
					},
				},
				{
					level: LevelMedium, confLo: 60, confHi: 80,
					match: func(v acoustic.FeatureVector) bool { return v.JitterPercent > t.JitterMediumPercent },
					rationale: func(v acoustic.FeatureVector) string {
						return fmt.Sprintf("Micro-Tremor Index (Jitter) is %.2f%%, showing slight variations.", v.JitterPercent)
					},
				},
				{
					level: LevelLow, confLo: 80, confHi: 99,
					match: always,
					rationale: func(v acoustic.FeatureVector) string {
						return fmt.Sprintf("Micro-Tremor Index (Jitter) is nominal at %.2f%%.", v.JitterPercent)
					},
				},
			},
		},
		{
			category:  CategoryNeurological,
			condition: "Alzheimer's / Cognitive Decline",
			clauses: []clause{
				{
					level: LevelHigh, confLo: 80, confHi: 92,
					match: func(v acoustic.FeatureVector) bool { return v.HNRdB < t.HNRLowDB },
					rationale: func(v acoustic.FeatureVector) string {
						return fmt.Sprintf("Phonatory Flow (HNR) is low at %.1f dB, indicating increased noise in the speech signal often associated with cognitive speech patterns.", v.HNRdB)
					},
				},
				{
					level: LevelLow, confLo: 85, confHi: 95,
					match: always,
					rationale: func(v acoustic.FeatureVector) string {
						return fmt.Sprintf("Phonatory Flow (HNR) is optimal at %.1f dB.", v.HNRdB)
					},
				},
			},
		},
		{
			category:  CategoryMentalHealth,
			condition: "Clinical Depression",
			clauses: []clause{
				{
					level: LevelHigh, confLo: 75, confHi: 90,
					match: func(v acoustic.FeatureVector) bool {
						return v.F0StdHz > 0 && v.F0StdHz < t.F0StdFloorHz
					},
					rationale: func(v acoustic.FeatureVector) string {
						return fmt.Sprintf("Prosodic Range is restricted (pitch variability %.1f Hz). Flat prosody is a known biomarker for mood disorders.", v.F0StdHz)
					},
				},
				{
					level: LevelLow, confLo: 90, confHi: 98,
					match: always,
					rationale: func(v acoustic.FeatureVector) string {
						return fmt.Sprintf("Prosodic Range is dynamic and healthy (%.1f Hz).", v.F0StdHz)
					},
				},
			},
		},
		{
			category:  CategoryNeurological,
			condition: "Huntington's Disease",
			clauses: []clause{
				{
					level: LevelMedium, confLo: 70, confHi: 85,
					match: func(v acoustic.FeatureVector) bool { return v.ShimmerPercent > t.ShimmerHighPercent },
					rationale: func(v acoustic.FeatureVector) string {
						return fmt.Sprintf("Vocal intensity variation (Shimmer) is %.2f%%, suggesting potential dysarthria.", v.ShimmerPercent)
					},
				},
				{
					level: LevelLow, confLo: 85, confHi: 95,
					match: always,
					rationale: func(acoustic.FeatureVector) string {
						return "Vocal rhythm and intensity are stable."
					},
				},
			},
		},
		{
			category:  CategoryRespiratory,
			condition: "Chronic Anxiety",
			clauses: []clause{
				{
					level: LevelMedium, confLo: 65, confHi: 80,
					match: func(v acoustic.FeatureVector) bool {
						return v.F0StdHz > t.F0StdCeilingHz && v.JitterPercent > t.JitterMediumPercent
					},
					rationale: func(acoustic.FeatureVector) string {
						return "Elevated pitch variability combined with micro-instability suggests potential respiratory strain or chronic anxiety."
					},
				},
				{
					level: LevelLow, confLo: 85, confHi: 95,
					match: always,
					rationale: func(acoustic.FeatureVector) string {
						return "Vocal cord tension appears relaxed and normal."
					},
				},
			},
		},
		{
			category:  CategoryWomensHealth,
			condition: "Thyroid Nodule / Hashimoto's Indicator",
			clauses: []clause{
				{
					level: LevelHigh, confLo: 85, confHi: 94,
					match: func(v acoustic.FeatureVector) bool { return v.HNRdB < b.thyroidHNRdB-thyroidCriticalOffsetDB },
					rationale: func(v acoustic.FeatureVector) string {
						return fmt.Sprintf("Severe vocal breathiness detected (HNR %.1f dB). Low HNR maps to potential glottal insufficiency often linked to thyroid masses or autoimmune vocal fatigue.", v.HNRdB)
					},
				},
				{
					level: LevelMedium, confLo: 60, confHi: 75,
					match: func(v acoustic.FeatureVector) bool { return v.HNRdB < b.thyroidHNRdB },
					rationale: func(v acoustic.FeatureVector) string {
						return fmt.Sprintf("Elevated breathiness detected (HNR %.1f dB). May indicate early thyroid pressure on the recurrent laryngeal nerve or autoimmune inflammation.", v.HNRdB)
					},
				},
				{
					level: LevelLow, confLo: 90, confHi: 98,
					match: always,
					rationale: func(v acoustic.FeatureVector) string {
						return fmt.Sprintf("HNR is robust at %.1f dB. No acoustic signs of thyroid-related glottal gap.", v.HNRdB)
					},
				},
			},
		},
		{
			category:  CategoryWomensHealth,
			condition: "Estrogen-Driven Vocal Atrophy / Edema",
			clauses: []clause{
				{
					level: LevelHigh, confLo: 80, confHi: 92,
					match: func(v acoustic.FeatureVector) bool {
						return v.JitterPercent > b.jitterPercent*severeRoughnessMultiplier ||
							v.ShimmerPercent > b.shimmerPercent*severeRoughnessMultiplier
					},
					rationale: func(v acoustic.FeatureVector) string {
						return fmt.Sprintf("Significant microroughness detected (Jitter %.2f%%, Shimmer %.2f%%) exceeding life-stage norms, indicating potential severe hormonal imbalance or pronounced vocal fold atrophy.", v.JitterPercent, v.ShimmerPercent)
					},
				},
				{
					level: LevelMedium, confLo: 55, confHi: 70,
					match: func(v acoustic.FeatureVector) bool {
						return v.JitterPercent > b.jitterPercent || v.ShimmerPercent > b.shimmerPercent
					},
					rationale: func(v acoustic.FeatureVector) string {
						return fmt.Sprintf("Mild microroughness detected (Jitter %.2f%%, Shimmer %.2f%%). May indicate early stages of hormonal vocal changes.", v.JitterPercent, v.ShimmerPercent)
					},
				},
				{
					level: LevelLow, confLo: 88, confHi: 96,
					match: always,
					rationale: func(acoustic.FeatureVector) string {
						return "Vocal roughness is well within normal ranges for this life stage."
					},
				},
			},
		},
	}
}

// apply evaluates the ladder and materializes a finding.
func (r rule) apply(v acoustic.FeatureVector, noise Noise) Finding {
	for _, c := range r.clauses {
		if !c.match(v) {
			continue
		}
		return Finding{
			Category:   r.category,
			Condition:  r.condition,
			Level:      c.level,
			Confidence: noise.Uniform(c.confLo, c.confHi),
			Rationale:  c.rationale(v),
		}
	}
	// Ladders end in an always-true clause; reaching here is a table bug.
	return Finding{Category: r.category, Condition: r.condition, Level: LevelLow}
}
