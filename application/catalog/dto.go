package catalog

// AddPublicationRequest 表示新增图书的入参。
// Price 为未限幅的金额（最小货币单位），入库时限制在 5 到 50 之间。
type AddPublicationRequest struct {
	ISBN      string `json:"isbn"`
	Title     string `json:"title"`
	Publisher string `json:"publisher"`
	Price     int64  `json:"price"`
}

// AddPeriodicalRequest 表示新增期刊的入参。
type AddPeriodicalRequest struct {
	AddPublicationRequest
	Periodicity string `json:"periodicity"`
}

// ItemResponse 表示目录条目返回模型。
type ItemResponse struct {
	ISBN        string `json:"isbn"`
	Title       string `json:"title"`
	Publisher   string `json:"publisher"`
	Kind        string `json:"kind"`
	Price       int64  `json:"price"`
	Currency    string `json:"currency"`
	Periodicity string `json:"periodicity,omitempty"`
	Description string `json:"description"`
}
