package search

// DemoCatalog is the fixed song set served when no video-search API key is
// configured. Lyrics excerpts are first lines only, used for
// query-in-lyrics matching.
func DemoCatalog() []Song {
	return []Song{
		{
			ID:      "diem-xua",
			Title:   "Diễm Xưa",
			Artist:  "Khánh Ly",
			Snippet: "Tình khúc Trịnh Công Sơn gắn với những chiều mưa Huế",
			Lyrics:  "Mưa vẫn mưa bay trên tầng tháp cổ\nDài tay em mấy thuở mắt xanh xao",
			VideoID: "6R9TpbMuKiA",
		},
		{
			ID:      "ha-trang",
			Title:   "Hạ Trắng",
			Artist:  "Khánh Ly",
			Snippet: "Gọi nắng trên vai em gầy đường xa áo bay",
			Lyrics:  "Gọi nắng trên vai em gầy đường xa áo bay",
			VideoID: "Q2kUGBDsZqM",
		},
		{
			ID:      "thanh-pho-buon",
			Title:   "Thành Phố Buồn",
			Artist:  "Chế Linh",
			Snippet: "Bolero kinh điển của Lam Phương về Đà Lạt sương mù",
			Lyrics:  "Thành phố nào nhớ không em nơi chúng mình tìm phút êm đềm",
			VideoID: "kAZrLVwIvNw",
		},
		{
			ID:      "da-lat-hoang-hon",
			Title:   "Đà Lạt Hoàng Hôn",
			Artist:  "Thanh Tuyền",
			Snippet: "Chiều nghiêng bóng trên đồi thông thành phố ngàn hoa",
			Lyrics:  "Lắng nghe chiều xuống thành phố mộng mơ",
			VideoID: "Fz7EL1MFGgU",
		},
		{
			ID:      "em-gai-mua",
			Title:   "Em Gái Mưa",
			Artist:  "Hương Tràm",
			Snippet: "Bản ballad hiện tượng 2017 của Mr. Siro",
			Lyrics:  "Mưa trôi cả bầu trời nắng trượt theo những nỗi buồn",
			VideoID: "MeYmTIxYvgY",
		},
		{
			ID:      "noi-nay-co-anh",
			Title:   "Nơi Này Có Anh",
			Artist:  "Sơn Tùng M-TP",
			Snippet: "Hit Valentine 2017 với giai điệu tươi sáng",
			Lyrics:  "Em là ai từ đâu bước đến nơi đây dịu dàng chân phương",
			VideoID: "FN7ALfpGxiI",
		},
		{
			ID:      "bien-nho",
			Title:   "Biển Nhớ",
			Artist:  "Khánh Ly",
			Snippet: "Ngày mai em đi biển nhớ tên em gọi về",
			Lyrics:  "Ngày mai em đi biển nhớ tên em gọi về",
			VideoID: "V7xY0PhJt9Y",
		},
		{
			ID:      "mua-hong",
			Title:   "Mưa Hồng",
			Artist:  "Khánh Ly",
			Snippet: "Trời ươm nắng cho mây hồng",
			Lyrics:  "Trời ươm nắng cho mây hồng\nMây qua mau em nghiêng sầu",
			VideoID: "pYV3qTF0nDk",
		},
	}
}
