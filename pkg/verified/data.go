package verified

// Catalog is the hand-curated dataset. Every entry was fact-checked against
// the cited sources; narrative fields are authored, never generated.
func Catalog() []Song {
	return []Song{
		{
			ID:                "diem-xua",
			Title:             "Diễm Xưa",
			AlternativeTitles: []string{"Diem Xua", "Utsukushii Mukashi"},
			Artist:            "Khánh Ly",
			Composer:          "Trịnh Công Sơn",
			Year:              1960,
			Genre:             "Nhạc trữ tình",
			Era:               "Thập niên 1960",
			CompositionStory:  "Trịnh Công Sơn viết Diễm Xưa tại Huế, lấy cảm hứng từ Ngô Vũ Bích Diễm, cô nữ sinh Đồng Khánh ông thường ngắm qua khung cửa mỗi chiều mưa. Hình ảnh mưa trên tầng tháp cổ gắn với những cơn mưa dầm xứ Huế.",
			HistoricalContext: "Bài hát trở thành hiện tượng khi Khánh Ly trình bày tại Hội chợ Osaka 1970 và sau đó được thu âm bằng tiếng Nhật.",
			Facts: []string{
				"Phiên bản tiếng Nhật Utsukushii Mukashi từng vào bảng xếp hạng đĩa đơn tại Nhật.",
				"Được Đại học Kansai đưa vào giáo trình nghiên cứu âm nhạc.",
			},
			Sources:    []string{"Trịnh Công Sơn - Một người thơ ca, một cõi đi về (NXB Âm nhạc)", "Tuổi Trẻ 2017"},
			Confidence: "verified",
		},
		{
			ID:                "ha-trang",
			Title:             "Hạ Trắng",
			AlternativeTitles: []string{"Ha Trang"},
			Artist:            "Khánh Ly",
			Composer:          "Trịnh Công Sơn",
			Year:              1961,
			Genre:             "Nhạc trữ tình",
			Era:               "Thập niên 1960",
			CompositionStory:  "Ra đời từ một giấc mơ về màu trắng hoa sứ trong cơn sốt của nhạc sĩ tại Huế, hòa cùng câu chuyện người cha già gọi tên người vợ vừa mất. Gọi nắng cho cơn mê chiều nhiều hoa trắng bay.",
			Facts: []string{
				"Thường được trình diễn với phần saxophone mở đầu, nổi tiếng qua tiếng kèn của Trần Mạnh Tuấn.",
			},
			Sources:    []string{"Hồi ký Trịnh Công Sơn kể lại trên Sóng Nhạc 1990"},
			Confidence: "verified",
		},
		{
			ID:                "mua-hong",
			Title:             "Mưa Hồng",
			AlternativeTitles: []string{"Mua Hong"},
			Artist:            "Khánh Ly",
			Composer:          "Trịnh Công Sơn",
			Year:              1964,
			Genre:             "Nhạc trữ tình",
			Era:               "Thập niên 1960",
			CompositionStory:  "Viết cho Dao Ánh, em gái của Bích Diễm, trong những năm tháng thư từ giữa Huế và Đà Lạt. Cuộc đời đó có bao lâu mà hững hờ trở thành một trong những câu hát được trích dẫn nhiều nhất của Trịnh.",
			Sources:           []string{"Thư tình gửi một người (NXB Trẻ, 2011)"},
			Confidence:        "verified",
		},
		{
			ID:                "bien-nho",
			Title:             "Biển Nhớ",
			AlternativeTitles: []string{"Bien Nho"},
			Artist:            "Khánh Ly",
			Composer:          "Trịnh Công Sơn",
			Year:              1962,
			Genre:             "Nhạc trữ tình",
			Era:               "Thập niên 1960",
			CompositionStory:  "Sáng tác tại Quy Nhơn khi nhạc sĩ theo học Sư phạm, gửi người bạn tên Tôn Nữ Bích Khê; chữ Khê được giấu trong câu trời cao níu bước Sơn-Khê.",
			Sources:           []string{"Trịnh Công Sơn - Cuộc đời, âm nhạc, thơ, hội họa và suy tưởng (NXB TP.HCM)"},
			Confidence:        "verified",
		},
		{
			ID:                "thanh-pho-buon",
			Title:             "Thành Phố Buồn",
			AlternativeTitles: []string{"Thanh Pho Buon"},
			Artist:            "Chế Linh",
			Composer:          "Lam Phương",
			Year:              1970,
			Genre:             "Bolero",
			Era:               "Thập niên 1970",
			CompositionStory:  "Lam Phương viết Thành Phố Buồn trong một chuyến công tác Đà Lạt năm 1970, giữa sương mù và những con dốc vắng. Bản nhạc in ra bán chạy kỷ lục thời bấy giờ.",
			Facts: []string{
				"Tiền tác quyền bản in được cho là gần 12 triệu đồng thời điểm 1970, con số kỷ lục của làng nhạc Sài Gòn.",
			},
			Sources:    []string{"Lam Phương - Trăm nhớ ngàn thương (hồi ký, 2019)"},
			Confidence: "verified",
		},
		{
			ID:                "da-lat-hoang-hon",
			Title:             "Đà Lạt Hoàng Hôn",
			AlternativeTitles: []string{"Da Lat Hoang Hon"},
			Artist:            "Thanh Tuyền",
			Composer:          "Minh Kỳ",
			Year:              1968,
			Genre:             "Bolero",
			Era:               "Thập niên 1960",
			CompositionStory:  "Minh Kỳ cùng Dạ Cầm viết về thành phố sương mù với đồi thông và tiếng chuông chiều, một trong những ca khúc định hình hình ảnh Đà Lạt trong bolero.",
			Sources:           []string{"Tờ nhạc Tinh Hoa Miền Nam 1968"},
			Confidence:        "verified",
		},
		{
			ID:                "noi-vong-tay-lon",
			Title:             "Nối Vòng Tay Lớn",
			AlternativeTitles: []string{"Noi Vong Tay Lon"},
			Artist:            "Trịnh Công Sơn",
			Composer:          "Trịnh Công Sơn",
			Year:              1968,
			Genre:             "Nhạc phản chiến",
			Era:               "Thập niên 1960",
			CompositionStory:  "Ca khúc kêu gọi nối liền ba miền, được chính Trịnh Công Sơn hát trên Đài phát thanh Sài Gòn trưa ngày 30 tháng 4 năm 1975.",
			Sources:           []string{"Băng ghi âm Đài phát thanh Sài Gòn 30/4/1975"},
			Confidence:        "verified",
		},
		{
			ID:                "em-gai-mua",
			Title:             "Em Gái Mưa",
			AlternativeTitles: []string{"Em Gai Mua"},
			Artist:            "Hương Tràm",
			Composer:          "Mr. Siro",
			Year:              2017,
			Genre:             "Ballad",
			Era:               "Thập niên 2010",
			CompositionStory:  "Bản ballad của Mr. Siro qua giọng hát Hương Tràm trở thành hiện tượng 2017, kéo theo một bộ phim điện ảnh cùng tên năm 2018.",
			Facts: []string{
				"MV đạt hơn 100 triệu lượt xem trong vòng một năm phát hành.",
			},
			Sources:    []string{"Zing MP3 Awards 2017"},
			Confidence: "verified",
		},
	}
}
