package astro

import "moonwise/internal/domain"

// astrologyInsights is keyed by phase then sign. Only the two anchor phases
// carry dedicated copy; lookups for other phases fall back to the New Moon
// set, and unknown signs fall back to Aries. Callers never pass invalid
// keys, but a miss must degrade to prose rather than panic.
var astrologyInsights = map[domain.Phase]map[string]string{
	domain.PhaseNewMoon: {
		"Aries":       "A powerful time for new beginnings and taking initiative. Channel your pioneering spirit into fresh ventures.",
		"Taurus":      "Focus on stability and material foundations. This is perfect timing for financial planning and grounding practices.",
		"Gemini":      "Communication and learning take center stage. Start new educational pursuits or important conversations.",
		"Cancer":      "Emotional renewal and family connections are highlighted. Create nurturing spaces in your life.",
		"Leo":         "Creative expression and self-confidence bloom. Begin artistic projects or leadership roles.",
		"Virgo":       "Organization and health improvements are favored. Start new wellness routines or decluttering projects.",
		"Libra":       "Relationships and balance are the focus. Initiate partnerships or restore harmony in your life.",
		"Scorpio":     "Deep transformation and renewal are possible. Embrace change and release what no longer serves.",
		"Sagittarius": "Adventure and philosophical growth call to you. Begin journeys of discovery and learning.",
		"Capricorn":   "Career advancement and goal-setting are highlighted. Structure your ambitions for success.",
		"Aquarius":    "Innovation and humanitarian efforts take precedence. Start projects that benefit the collective.",
		"Pisces":      "Spiritual growth and intuitive development are enhanced. Trust your inner wisdom and creativity.",
	},
	domain.PhaseFullMoon: {
		"Aries":       "Peak energy for leadership and bold action. Your courage and initiative reach their zenith.",
		"Taurus":      "Abundance and material manifestation are at their strongest. Celebrate your achievements and stability.",
		"Gemini":      "Communication reaches its peak clarity. Important messages and connections come to fruition.",
		"Cancer":      "Emotional fulfillment and family bonds are deeply felt. Nurturing reaches its most powerful expression.",
		"Leo":         "Creative brilliance and recognition shine brightest. Your unique talents demand the spotlight.",
		"Virgo":       "Perfection and service find their highest expression. Your attention to detail yields remarkable results.",
		"Libra":       "Relationships reach perfect harmony or clear resolution. Balance and beauty are prominently featured.",
		"Scorpio":     "Transformation completes its powerful cycle. Deep truths and hidden knowledge are revealed.",
		"Sagittarius": "Wisdom and adventure reach their peak. Your philosophical insights guide others on their paths.",
		"Capricorn":   "Achievement and authority are fully realized. Your hard work manifests in tangible success.",
		"Aquarius":    "Innovation and group consciousness reach their heights. Revolutionary ideas benefit humanity.",
		"Pisces":      "Spiritual connection and intuitive gifts reach their fullest expression. Dreams and reality merge beautifully.",
	},
}

var wellnessTips = map[domain.Phase]string{
	domain.PhaseNewMoon:        "Practice intention-setting meditation and gentle yoga. This is ideal for starting new wellness routines and setting health goals.",
	domain.PhaseWaxingCrescent: "Build momentum with consistent exercise and hydration. Focus on establishing healthy habits that will grow with the moon.",
	domain.PhaseFirstQuarter:   "Channel the moon's building energy into strength training and active pursuits. Push through challenges with determination.",
	domain.PhaseWaxingGibbous:  "Refine your wellness practices and prepare for peak energy. Focus on nutrition optimization and stress management.",
	domain.PhaseFullMoon:       "Embrace high-energy activities but balance with restorative practices. Meditation and breathwork help channel intense energy.",
	domain.PhaseWaningGibbous:  "Practice gratitude and gentle release. Detox practices and cleansing routines are particularly beneficial now.",
	domain.PhaseLastQuarter:    "Focus on letting go of unhealthy habits. This is perfect for breaking patterns and clearing emotional blockages.",
	domain.PhaseWaningCrescent: "Rest, restore, and prepare for renewal. Prioritize sleep, gentle stretching, and contemplative practices.",
}

// AstrologyInsight returns fixed insight prose for a phase and sign.
func AstrologyInsight(phase domain.Phase, sign string) string {
	phaseInsights, ok := astrologyInsights[phase]
	if !ok {
		phaseInsights = astrologyInsights[domain.PhaseNewMoon]
	}
	if insight, ok := phaseInsights[sign]; ok {
		return insight
	}
	return phaseInsights["Aries"]
}

// WellnessTip returns the fixed wellness prose for a phase.
func WellnessTip(phase domain.Phase) string {
	if tip, ok := wellnessTips[phase]; ok {
		return tip
	}
	return wellnessTips[domain.PhaseNewMoon]
}
