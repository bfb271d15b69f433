package inflect

// suruForms returns every inflected suffix for a suru-class verb after the
// する has been stripped from the stem. JMdict kanji surfaces for suru-class
// entries always literally end in する (e.g. 勉強する), so one table covers
// both the kanji and reading forms uniformly.
func suruForms() map[FeatureSet]string {
	return map[FeatureSet]string{
		With():                       "する",
		With(Negative):               "しない",
		With(Polite):                 "します",
		With(Past):                   "した",
		With(Negative, Polite):       "しません",
		With(Past, Polite):           "しました",
		With(Past, Negative):         "しなかった",
		With(Past, Negative, Polite): "しませんでした",
		With(Te):                     "して",
		With(Volitional):             "しよう",
		With(Conditional):            "すれば",
		With(Potential):              "できる",
		With(Passive):                "される",
		With(Causative):              "させる",
		With(Imperative):             "しろ",
	}
}
