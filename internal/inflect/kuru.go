package inflect

// kuruForm holds the kanji and reading suffix for one inflected form of 来る,
// since the 来/き/こ/く reading alternation means the kanji stem cannot share
// a single suffix table with the reading stem the way other verb classes do.
type kuruForm struct {
	kanji   string
	reading string
}

// kuruForms returns every inflected form of 来る, keyed by feature set. The
// kanji column always starts from 来, the reading column from く — callers
// strip 来る/くる from the dictionary-form stem before applying these.
func kuruForms() map[FeatureSet]kuruForm {
	return map[FeatureSet]kuruForm{
		With():                       {"来る", "くる"},
		With(Negative):               {"来ない", "こない"},
		With(Polite):                 {"来ます", "きます"},
		With(Past):                   {"来た", "きた"},
		With(Negative, Polite):       {"来ません", "きません"},
		With(Past, Polite):           {"来ました", "きました"},
		With(Past, Negative):         {"来なかった", "こなかった"},
		With(Past, Negative, Polite): {"来ませんでした", "きませんでした"},
		With(Te):                     {"来て", "きて"},
		With(Volitional):             {"来よう", "こよう"},
		With(Conditional):            {"来れば", "くれば"},
		With(Potential):               {"来られる", "こられる"},
		With(Passive):                {"来られる", "こられる"},
		With(Causative):              {"来させる", "こさせる"},
		With(Imperative):             {"来い", "こい"},
	}
}
