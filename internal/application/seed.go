package application

import (
	"time"

	"github.com/suugaanle/qaamuus/internal/domain/entity"
)

func seedDate(day int) time.Time {
	return time.Date(2024, time.January, day, 0, 0, 0, 0, time.UTC)
}

// SeedEntries returns the fixed default dictionary. Reset always restores
// exactly this set, regardless of prior state.
func SeedEntries() []entity.DictionaryEntry {
	return []entity.DictionaryEntry{
		{
			ID:              "1",
			Word:            "Gabay",
			Definition:      "Waa nooc ka mid ah suugaanta Soomaaliyeed oo ah maansada ugu weyn ee dhaqanka Soomaaliyeed.",
			LiteraryContext: "Gabaygu waa mid ka mid ah noocyada suugaanta ee ugu muhiimsan dhaqanka Soomaaliyeed.",
			Examples:        []string{"Gabayga Sayid Maxamed Cabdulle Xasan", "Gabayada Ismaaciil Mire"},
			Synonyms:        []string{"Maanso", "Hees dheer"},
			Category:        entity.CategoryGabay,
			PoetName:        "Sayid Maxamed Cabdulle Xasan",
			PoemHistory:     "Gabaygan wuxuu ku saabsan yahay dagaalkii Dervishka",
			PoemText:        "Tii hore way iga tagtay...",
			DateAdded:       seedDate(1),
			AddedBy:         "System",
		},
		{
			ID:              "2",
			Word:            "Hees",
			Definition:      "Waa suugaan lagu qoro oo lagu luuqeeyo, badanaa waxay la socotaa muusig.",
			LiteraryContext: "Heesaha waxay door muhiim ah ka ciyaaraan dhaqanka iyo suugaanta Soomaaliyeed.",
			Examples:        []string{"Heesaha Magool", "Heesaha Khadra Daahir"},
			Synonyms:        []string{"Luuq", "Gabay gaaban"},
			Category:        entity.CategoryHees,
			PoetName:        "Magool",
			PoemHistory:     "Heesan waxay ku saabsan tahay jacaylka",
			PoemText:        "Jacayl baan qabaa...",
			DateAdded:       seedDate(2),
			AddedBy:         "System",
		},
		{
			ID:              "3",
			Word:            "Sheeko",
			Definition:      "Waa wariye ama qiso la sheego, badanaa waxay ka kooban tahay dhacdooyin khayaali ah ama dhab ah.",
			LiteraryContext: "Sheekoyinku waxay muhiim u yihiin dhaqalka suugaanta Soomaaliyeed.",
			Examples:        []string{"Sheekada Igaal Shidaad", "Sheekada Wiil Waal"},
			Synonyms:        []string{"Qiso", "Wariye"},
			Category:        entity.CategoryLiteraryTerm,
			DateAdded:       seedDate(3),
			AddedBy:         "System",
		},
		{
			ID:              "4",
			Word:            "Maahmaah",
			Definition:      "Waa odhaah gaaban oo xigmad leh, badanaa waxay ka tarjumaysaa waayo-aragnimo dhaqameed.",
			LiteraryContext: "Maahmaahyadu waxay ka mid yihiin hantida suugaanta Soomaaliyeed.",
			Examples:        []string{"Nin walba wuxuu ku nool yahay wixii uu yaqaan", "Wax walba waqtigiisii baa leh"},
			Synonyms:        []string{"Odhaah", "Xigmad"},
			Category:        entity.CategoryLiteraryTerm,
			DateAdded:       seedDate(4),
			AddedBy:         "System",
		},
		{
			ID:              "5",
			Word:            "Suugaan",
			Definition:      "Waa farshaxanka qoraalka iyo hadalka ee loo isticmaalo in lagu muujiyo dareenka, fikradaha, iyo waayo-aragnimada.",
			LiteraryContext: "Suugaantu waa saldhigga dhaqanka Soomaaliyeed.",
			Examples:        []string{"Suugaanta Soomaaliyeed", "Suugaanta casriga ah"},
			Synonyms:        []string{"Farshaxan", "Qoraal farshaxan"},
			Category:        entity.CategoryLiteraryTerm,
			DateAdded:       seedDate(5),
			AddedBy:         "System",
		},
		{
			ID:              "6",
			Word:            "Buraanbur",
			Definition:      "Waa nooc ka mid ah suugaanta Soomaaliyeed oo ay badanaa tiraan haweenka, waxayna ku saabsan tahay dhacdooyin bulsheed.",
			LiteraryContext: "Buraanburku waa mid ka mid ah noocyada suugaanta ee gaar u ah haweenka Soomaaliyeed.",
			Examples:        []string{"Buraanbur Barni", "Buraanbur Hibo"},
			Synonyms:        []string{"Hees haween", "Maanso haween"},
			Category:        entity.CategoryHees,
			PoetName:        "Barni",
			PoemHistory:     "Buraanburkan wuxuu ku saabsan yahay guusha dagaal",
			PoemText:        "Raggii geesiga ahaa...",
			DateAdded:       seedDate(6),
			AddedBy:         "System",
		},
		{
			ID:              "7",
			Word:            "Geeraar",
			Definition:      "Waa nooc ka mid ah suugaanta Soomaaliyeed oo loo isticmaalo dagaalka iyo dhiirrigelinta.",
			LiteraryContext: "Geeraarka waxaa loo isticmaali jiray xilliyadii dagaalka si loo dhiirrigaliyo ciidamada.",
			Examples:        []string{"Geeraar Sayid", "Geeraar Dervish"},
			Synonyms:        []string{"Hees dagaal", "Dhiirrigelin"},
			Category:        entity.CategoryGabay,
			PoetName:        "Sayid Maxamed Cabdulle Xasan",
			PoemHistory:     "Geeraarkan wuxuu ku saabsan yahay dagaalkii xoreynta",
			PoemText:        "Geesi baan ahay...",
			DateAdded:       seedDate(7),
			AddedBy:         "System",
		},
		{
			ID:              "8",
			Word:            "Jiifto",
			Definition:      "Waa nooc ka mid ah suugaanta Soomaaliyeed oo gaaban, badanaa waxay ka hadlaysaa jacayl ama murugto.",
			LiteraryContext: "Jiiftadu waa mid ka mid ah noocyada suugaanta ee gaagaaban.",
			Examples:        []string{"Jiifto jacayl", "Jiifto calool xanuun"},
			Synonyms:        []string{"Hees gaaban", "Luuq gaaban"},
			Category:        entity.CategoryHees,
			PoetName:        "Khadra Daahir",
			PoemHistory:     "Jiiftadan waxay ku saabsan tahay jacaylka lumay",
			PoemText:        "Jacaylkii baan waayay...",
			DateAdded:       seedDate(8),
			AddedBy:         "System",
		},
	}
}
