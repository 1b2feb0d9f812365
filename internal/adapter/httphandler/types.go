package httphandler

type (
	ProductCard struct {
		ProductID     string   `json:"product_id"`
		Name          string   `json:"name"`
		Category      string   `json:"category"`
		CategoryLabel string   `json:"category_label"`
		Image         string   `json:"img"`
		IsService     bool     `json:"is_service"`
		FullPrice     int64    `json:"fullprice,omitempty"`
		HalfPrice     int64    `json:"halfprice,omitempty"`
		FullPriceText string   `json:"fullprice_text,omitempty"`
		HalfPriceText string   `json:"halfprice_text,omitempty"`
		Variants      []string `json:"variants"`
	}

	Tab struct {
		Tag   string `json:"tag"`
		Label string `json:"label"`
	}

	CatalogView struct {
		Tabs     []Tab         `json:"tabs"`
		Products []ProductCard `json:"products"`
	}
)

type AddItemRequest struct {
	ProductID string `json:"product_id"`
	Variant   string `json:"variant"`
	Quantity  int    `json:"quantity"`
}

type (
	CartLine struct {
		Name          string `json:"name"`
		VariantLabel  string `json:"variant_label"`
		Quantity      int    `json:"quantity"`
		LineTotal     int64  `json:"line_total"`
		LineTotalText string `json:"line_total_text"`
	}

	CartView struct {
		Lines            []CartLine `json:"lines"`
		ItemCount        int        `json:"item_count"`
		GrandTotal       int64      `json:"grand_total"`
		GrandTotalText   string     `json:"grand_total_text"`
		PaymentCode      string     `json:"payment_code,omitempty"`
		ShowWithdrawCode bool       `json:"show_withdraw_code"`
		Empty            bool       `json:"empty"`
	}
)

type CustomerRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type OrderLink struct {
	URL string `json:"url"`
}
