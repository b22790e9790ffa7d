package entity

// CatalogEntry is a row of the services table together with its service_list rows.
type CatalogEntry struct {
	ServiceID    int64             `json:"service_id"`
	ServiceName  string            `json:"service_name"`
	Description  string            `json:"description"`
	ServiceImage string            `json:"service_image"`
	ServiceList  []ServiceListItem `json:"service_list"`
}

type ServiceListItem struct {
	ServiceListID int64   `json:"service_list_id"`
	ServiceID     int64   `json:"service_id"`
	ServiceLists  string  `json:"service_lists"`
	Price         float64 `json:"price"`
	Unit          string  `json:"unit"`
}

// LineItem is a single priced entry of a cart, built per request.
type LineItem struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

/*
Mysql Schema:

CREATE TABLE services (
	service_id INT AUTO_INCREMENT PRIMARY KEY,
	service_name VARCHAR(255) NOT NULL,
	description TEXT,
	service_image VARCHAR(512)
);

CREATE INDEX service_name_idx ON services(service_name);

CREATE TABLE service_list (
	service_list_id INT AUTO_INCREMENT PRIMARY KEY,
	service_id INT NOT NULL REFERENCES services(service_id),
	service_lists VARCHAR(255) NOT NULL,
	price DOUBLE NOT NULL,
	unit VARCHAR(50)
);
*/
