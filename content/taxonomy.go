package content

import "strings"

// Category and tag definitions are static reference data, one set per
// locale. Counts are computed from the live post set at read time rather
// than stored here.
var categoriesByLocale = map[Locale][]Category{
	LocaleEN: {
		{Slug: "soft-skills", Name: "Soft Skills", Description: "Communication, feedback, and the human side of work", Locale: LocaleEN},
		{Slug: "career", Name: "Career Growth", Description: "Finding direction and growing professionally", Locale: LocaleEN},
		{Slug: "teamwork", Name: "Teamwork", Description: "Collaboration and working well with others", Locale: LocaleEN},
		{Slug: "product", Name: "Product News", Description: "Platform updates and announcements", Locale: LocaleEN},
	},
	LocaleFA: {
		{Slug: "soft-skills", Name: "مهارت‌های نرم", Description: "ارتباط مؤثر، بازخورد و جنبه انسانی کار", Locale: LocaleFA},
		{Slug: "career", Name: "رشد شغلی", Description: "یافتن مسیر و رشد حرفه‌ای", Locale: LocaleFA},
		{Slug: "teamwork", Name: "کار تیمی", Description: "همکاری و تعامل سازنده با دیگران", Locale: LocaleFA},
		{Slug: "product", Name: "اخبار محصول", Description: "به‌روزرسانی‌ها و اعلان‌های پلتفرم", Locale: LocaleFA},
	},
}

var tagsByLocale = map[Locale][]Tag{
	LocaleEN: {
		{Slug: "communication", Name: "Communication", Locale: LocaleEN},
		{Slug: "leadership", Name: "Leadership", Locale: LocaleEN},
		{Slug: "feedback", Name: "Feedback", Locale: LocaleEN},
		{Slug: "remote-work", Name: "Remote Work", Locale: LocaleEN},
		{Slug: "learning", Name: "Learning", Locale: LocaleEN},
	},
	LocaleFA: {
		{Slug: "communication", Name: "ارتباطات", Locale: LocaleFA},
		{Slug: "leadership", Name: "رهبری", Locale: LocaleFA},
		{Slug: "feedback", Name: "بازخورد", Locale: LocaleFA},
		{Slug: "remote-work", Name: "دورکاری", Locale: LocaleFA},
		{Slug: "learning", Name: "یادگیری", Locale: LocaleFA},
	},
}

// Categories returns the locale's category list with post counts computed
// from posts. Unknown locales yield an empty list.
func Categories(locale Locale, posts []BlogPost) []Category {
	defs := categoriesByLocale[locale]
	out := make([]Category, len(defs))
	copy(out, defs)
	for i := range out {
		n := 0
		for _, p := range posts {
			if strings.EqualFold(p.Category, out[i].Slug) {
				n++
			}
		}
		out[i].PostCount = n
	}
	return out
}

// Tags returns the locale's tag list with post counts computed from posts.
// A post counts once per tag it carries.
func Tags(locale Locale, posts []BlogPost) []Tag {
	defs := tagsByLocale[locale]
	out := make([]Tag, len(defs))
	copy(out, defs)
	for i := range out {
		n := 0
		for _, p := range posts {
			if containsFold(p.Tags, out[i].Slug) {
				n++
			}
		}
		out[i].PostCount = n
	}
	return out
}
