package migrations

import (
	"database/sql"
	"time"
)

const servicesTable = `
	CREATE TABLE IF NOT EXISTS services (
		service_id INT AUTO_INCREMENT PRIMARY KEY,
		service_name VARCHAR(255) NOT NULL,
		description TEXT,
		service_image VARCHAR(512),
		INDEX service_name_idx (service_name)
	);
`

const serviceListTable = `
	CREATE TABLE IF NOT EXISTS service_list (
		service_list_id INT AUTO_INCREMENT PRIMARY KEY,
		service_id INT NOT NULL,
		service_lists VARCHAR(255) NOT NULL,
		price DOUBLE NOT NULL,
		unit VARCHAR(50),
		FOREIGN KEY (service_id) REFERENCES services(service_id) ON DELETE CASCADE
	);
`

const ordersTable = `
	CREATE TABLE IF NOT EXISTS orders (
		order_id BIGINT NOT NULL PRIMARY KEY,
		user_id VARCHAR(64) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		INDEX user_id_idx (user_id)
	);
`

const orderDetailsTable = `
	CREATE TABLE IF NOT EXISTS orderdetails (
		order_detail_id BIGINT AUTO_INCREMENT PRIMARY KEY,
		order_id BIGINT NOT NULL,
		service_id INT NOT NULL,
		service_lists VARCHAR(255) NOT NULL,
		quantity_per_order INT NOT NULL,
		order_date VARCHAR(32),
		time VARCHAR(32),
		ad_detail TEXT,
		ad_subdistrict VARCHAR(255),
		ad_district VARCHAR(255),
		ad_province VARCHAR(255),
		ad_moredetail TEXT,
		total_amount DOUBLE NOT NULL,
		FOREIGN KEY (order_id) REFERENCES orders(order_id) ON DELETE CASCADE
	);
`

// AutoMigrateCatalog creates the services and service_list tables if they do not exist.
func AutoMigrateCatalog(retries int, dbs ...*sql.DB) error {
	return migrate(retries, dbs, servicesTable, serviceListTable)
}

// AutoMigrateOrders creates the orders and orderdetails tables if they do not exist.
func AutoMigrateOrders(retries int, dbs ...*sql.DB) error {
	return migrate(retries, dbs, ordersTable, orderDetailsTable)
}

func migrate(retries int, dbs []*sql.DB, queries ...string) error {
	for _, db := range dbs {
		for _, query := range queries {
			_, err := db.Exec(query)
			// Retry creating the table
			for i := 0; err != nil && i < retries; i++ {
				time.Sleep(1 * time.Second)
				_, err = db.Exec(query)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}
