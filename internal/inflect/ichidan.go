package inflect

// ichidanForms returns every inflected suffix for an ichidan verb after the
// final る has been stripped from the stem. Unlike godan, ichidan inflection
// never varies with the stem's preceding kana, so one table covers every verb
// in the class.
func ichidanForms() map[FeatureSet]string {
	return map[FeatureSet]string{
		With():                       "る",
		With(Negative):               "ない",
		With(Polite):                 "ます",
		With(Past):                   "た",
		With(Negative, Polite):       "ません",
		With(Past, Polite):           "ました",
		With(Past, Negative):         "なかった",
		With(Past, Negative, Polite): "ませんでした",
		With(Te):                     "て",
		With(Volitional):             "よう",
		With(Conditional):            "れば",
		With(Potential):              "られる",
		With(Passive):                "られる",
		With(Causative):              "させる",
		With(Imperative):             "ろ",
	}
}
