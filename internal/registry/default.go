package registry

// DefaultSpec returns the built-in coverage universe: internet, media, and
// gaming names across HK, US, A-share, JP, and KR listings.
func DefaultSpec() Spec {
	return Spec{
		Entities: []EntitySpec{
			{Name: "腾讯控股", Aliases: []string{"700", "TENCENT"}},
			{Name: "腾讯音乐", Aliases: []string{"TME", "1698"}},
			{Name: "阅文集团", Aliases: []string{"772", "00772"}},
			{Name: "虎牙", Aliases: []string{"HUYA"}},
			{Name: "欢聚集团", Aliases: []string{"YY", "JOYY"}},
			{Name: "Yalla", Aliases: []string{"YALA"}},
			{Name: "挚文集团", Aliases: []string{"MOMO"}},
			{Name: "微博", Aliases: []string{"WB"}},
			{Name: "知乎", Aliases: []string{"ZH"}},
			{Name: "快手", Aliases: []string{"1024", "KUAISHOU", "01024"}},
			{Name: "哔哩哔哩", Aliases: []string{"BILI", "9626", "BILIBILI"}},
			{Name: "爱奇艺", Aliases: []string{"IQ"}},
			{Name: "IMAX China", Aliases: []string{"1970"}},
			{Name: "猫眼娱乐", Aliases: []string{"1896"}},
			{Name: "阿里影业", Aliases: []string{"1060"}},
			{Name: "华策影视", Aliases: []string{"300133"}},
			{Name: "柠萌影视", Aliases: []string{"9857"}},
			{Name: "网易", Aliases: []string{"NTES", "9999"}},
			{Name: "网易云音乐", Aliases: []string{"9899", "CLOUD MUSIC"}},
			{Name: "有道", Aliases: []string{"YOUDAO"}},
			{Name: "任天堂", Aliases: []string{"7974", "NINTENDO"}},
			{Name: "索尼", Aliases: []string{"6758", "SONY"}},
			{Name: "Take-Two", Aliases: []string{"TTWO"}},
			{Name: "艺电", Aliases: []string{"EA", "ELECTRONIC ARTS"}},
			{Name: "Unity", Aliases: []string{"U", "UNITY"}},
			{Name: "Roblox", Aliases: []string{"RBLX"}},
			{Name: "心动公司", Aliases: []string{"2400", "XD"}},
			{Name: "金山软件", Aliases: []string{"3888"}},
			{Name: "IGG", Aliases: []string{"799"}},
			{Name: "祖龙娱乐", Aliases: []string{"9990"}},
			{Name: "友谊时光", Aliases: []string{"6820"}},
			{Name: "Studio Dragon", Aliases: []string{"253450"}},
			{Name: "Recruit", Aliases: []string{"6098"}},
			{Name: "三丽鸥", Aliases: []string{"8136"}},
			{Name: "Sea Ltd", Aliases: []string{"SE"}},
			{Name: "阿里巴巴", Aliases: []string{"BABA", "9988"}},
			{Name: "京东", Aliases: []string{"JD", "9618"}},
			{Name: "拼多多", Aliases: []string{"PDD"}},
			{Name: "美团", Aliases: []string{"3690", "MEITUAN"}},
			{Name: "百度", Aliases: []string{"9888", "BIDU"}},
			{Name: "泡泡玛特", Aliases: []string{"9992", "POP MART", "POPMART"}},
			{Name: "Spotify", Aliases: []string{"SPOT"}},
			{Name: "Netflix", Aliases: []string{"NFLX"}},
			{Name: "The Trade Desk", Aliases: []string{"TTD"}},
			{Name: "AppLovin", Aliases: []string{"APP"}},
			{Name: "迪士尼", Aliases: []string{"DIS", "DISNEY"}},
			{Name: "康卡斯特", Aliases: []string{"CMCSA"}},
			{Name: "宏盟", Aliases: []string{"OMC", "OMNICOM"}},
			{Name: "Live Nation", Aliases: []string{"LYV"}},
			{Name: "华纳音乐", Aliases: []string{"WMG"}},
			{Name: "华纳兄弟探索", Aliases: []string{"WBD", "GSWBD"}},
			{Name: "派拉蒙", Aliases: []string{"PARA"}},
			{Name: "福克斯", Aliases: []string{"FOXA"}},
			{Name: "狮门影业", Aliases: []string{"LGF", "LGF.A"}},
			{Name: "AT&T", Aliases: []string{"T", "AT&T"}},
			{Name: "瑞幸咖啡", Aliases: []string{"LKNCY"}},
			{Name: "贝壳", Aliases: []string{"BEKE"}},
		},
		Ambiguous:        DefaultAmbiguous(),
		IndustryKeywords: DefaultIndustryKeywords(),
		StockFeatures:    DefaultStockFeatures(),
	}
}

// DefaultAmbiguous lists short or common aliases that must match on
// word boundaries.
func DefaultAmbiguous() []string {
	return []string{"T", "U", "SE", "YY", "XD", "EA", "WB", "JD", "ZH", "APP"}
}

// DefaultIndustryKeywords lists filename fragments that mark a sector or
// strategy piece when no company matched.
func DefaultIndustryKeywords() []string {
	return []string{"Tracker", "Strategy", "Outlook", "Sector", "Industry", "Quantitative", "Portfolio", "Macro", "Internet", "Media"}
}

// DefaultStockFeatures lists page-one fragments that mark a single-stock
// report. Matching is case-sensitive.
func DefaultStockFeatures() []string {
	return []string{"Target Price", "Rating", "Buy", "Sell", "Hold", "Outperform", "Neutral", "EPS Estimate"}
}

// Default returns the built-in registry.
func Default() *Registry {
	return MustNew(DefaultSpec())
}
