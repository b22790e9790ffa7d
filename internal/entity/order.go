package entity

import "time"

// UserIdentity is the verified caller attached by the auth middleware.
type UserIdentity struct {
	UserID string
}

// BillSubmission is the finalized purchase intent sent by the client.
type BillSubmission struct {
	ServiceID   int64
	ServiceInfo []LineItem
	Date        string
	Times       string
	Detail      string
	Subdistrict string
	District    string
	Province    string
	MoreDetail  string
	NetPrice    float64
}

type Order struct {
	OrderID   int64     `json:"order_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderDetail is one line item of an order. Order level fields (date, time,
// address, total) are repeated on every row of the same order.
type OrderDetail struct {
	OrderDetailID    int64   `json:"order_detail_id"`
	OrderID          int64   `json:"order_id"`
	ServiceID        int64   `json:"service_id"`
	ServiceLists     string  `json:"service_lists"`
	QuantityPerOrder int     `json:"quantity_per_order"`
	OrderDate        string  `json:"order_date"`
	Time             string  `json:"time"`
	AdDetail         string  `json:"ad_detail"`
	AdSubdistrict    string  `json:"ad_subdistrict"`
	AdDistrict       string  `json:"ad_district"`
	AdProvince       string  `json:"ad_province"`
	AdMoreDetail     string  `json:"ad_moredetail"`
	TotalAmount      float64 `json:"total_amount"`
}

/*
Mysql Table

CREATE TABLE orders (
	order_id INT AUTO_INCREMENT PRIMARY KEY,
	user_id VARCHAR(64) NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE orderdetails (
	order_detail_id INT AUTO_INCREMENT PRIMARY KEY,
	order_id INT NOT NULL REFERENCES orders(order_id),
	...
);
*/
