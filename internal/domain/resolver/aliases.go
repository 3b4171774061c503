package resolver

// Alias maps a canonical material to catalog name fragments and the category
// used when no product name matches.
type Alias struct {
	Key      string
	Aliases  []string
	Category string
}

// Aliases is matched top to bottom and the first hit wins. Fastener entries
// come before board and profile entries because names like "پیچ پنل" also
// contain "پنل".
var Aliases = []Alias{
	{Key: "پیچ سازه", Aliases: []string{"پیچ سازه", "پیچ 13", "پیچ lb"}, Category: "پیچ و اتصالات"},
	{Key: "پیچ پنل", Aliases: []string{"پیچ پنل", "پیچ 25", "پیچ tn"}, Category: "پیچ و اتصالات"},
	{Key: "میخ و چاشنی", Aliases: []string{"میخ", "چاشنی"}, Category: "پیچ و اتصالات"},
	{Key: "کلیپس", Aliases: []string{"کلیپس", "clip"}, Category: "اتصالات"},
	{Key: "آویز", Aliases: []string{"آویز", "hanger"}, Category: "اتصالات"},
	{Key: "نبشی l25", Aliases: []string{"l25", "نبشی 25"}, Category: "نبشی"},
	{Key: "نبشی l24", Aliases: []string{"l24", "نبشی 24"}, Category: "نبشی"},
	{Key: "سازه f47", Aliases: []string{"f47", "اف 47"}, Category: "سازه"},
	{Key: "سازه u36", Aliases: []string{"u36", "یو 36"}, Category: "سازه"},
	{Key: "سازه t360", Aliases: []string{"t360", "سپری 360"}, Category: "سازه"},
	{Key: "سازه t120", Aliases: []string{"t120", "سپری 120"}, Category: "سازه"},
	{Key: "سازه t60", Aliases: []string{"t60", "سپری 60"}, Category: "سازه"},
	{Key: "سازه رانر", Aliases: []string{"رانر", "runner", "u50"}, Category: "سازه"},
	{Key: "سازه استاد", Aliases: []string{"استاد", "stud", "c50"}, Category: "سازه"},
	{Key: "پنل والیز", Aliases: []string{"پنل", "والیز", "panel"}, Category: "پنل"},
	{Key: "تایل", Aliases: []string{"تایل", "tile"}, Category: "تایل"},
	{Key: "پشم سنگ", Aliases: []string{"پشم سنگ", "پشم", "rockwool"}, Category: "عایق"},
}
