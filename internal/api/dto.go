package api

import "cart-service/internal/entity"

// netPriceRequest is the body of POST /:service_name.
type netPriceRequest struct {
	SummaryData []summaryItem `json:"summaryData" validate:"required,dive"`
}

type summaryItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price" validate:"gte=0"`
	Count int     `json:"count" validate:"gte=0"`
}

func (r netPriceRequest) lineItems() []entity.LineItem {
	items := make([]entity.LineItem, 0, len(r.SummaryData))
	for _, it := range r.SummaryData {
		items = append(items, entity.LineItem{Name: it.Name, UnitPrice: it.Price, Quantity: it.Count})
	}
	return items
}

// billRequest is the body of POST /:service_name/bill. Length limits follow the
// orderdetails columns; TEXT columns allow 16383 four-byte characters.
type billRequest struct {
	ServiceID   int64     `json:"serviceId" validate:"required"`
	Order       billOrder `json:"order"`
	Date        string    `json:"date" validate:"max=32"`
	Times       string    `json:"times" validate:"max=32"`
	Detail      string    `json:"detail" validate:"max=16383"`
	Subdistrict string    `json:"subdistrict" validate:"max=255"`
	District    string    `json:"district" validate:"max=255"`
	Province    string    `json:"province" validate:"max=255"`
	MoreDetail  string    `json:"moredetail" validate:"max=16383"`
	NetPrice    *float64  `json:"netPrice" validate:"omitempty,gte=0"`
}

type billOrder struct {
	ServiceInfo []serviceInfoItem `json:"serviceInfo" validate:"required,dive"`
}

type serviceInfoItem struct {
	ServiceName   string  `json:"service_name" validate:"required,max=255"`
	ServiceAmount int     `json:"service_amount" validate:"gte=1"`
	Price         float64 `json:"price" validate:"gte=0"`
}

func (r billRequest) toEntity() entity.BillSubmission {
	bill := entity.BillSubmission{
		ServiceID:   r.ServiceID,
		Date:        r.Date,
		Times:       r.Times,
		Detail:      r.Detail,
		Subdistrict: r.Subdistrict,
		District:    r.District,
		Province:    r.Province,
		MoreDetail:  r.MoreDetail,
	}
	if r.NetPrice != nil {
		bill.NetPrice = *r.NetPrice
	}
	if r.Order.ServiceInfo != nil {
		bill.ServiceInfo = make([]entity.LineItem, 0, len(r.Order.ServiceInfo))
		for _, it := range r.Order.ServiceInfo {
			bill.ServiceInfo = append(bill.ServiceInfo, entity.LineItem{
				Name:      it.ServiceName,
				UnitPrice: it.Price,
				Quantity:  it.ServiceAmount,
			})
		}
	}
	return bill
}
