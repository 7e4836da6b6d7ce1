// Package seed holds the bundled default datasets. A collection whose
// persisted value is absent or corrupt loads these instead, and clearing a
// collection restores them on the next read.
package seed

import (
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/nmthanh/backoffice-api/internal/domain/entity"
)

// Categories returns the default category list.
func Categories() []entity.Category {
	return []entity.Category{
		{ID: "1", Name: "Rau củ quả", Description: "Các loại rau, củ tươi.....", ProductCount: 240, CreatedDate: "20/8/2025", Status: entity.CategoryActive},
		{ID: "2", Name: "Thịt", Description: "Các loại thịt, gia cầm....", ProductCount: 240, CreatedDate: "20/8/2025", Status: entity.CategoryActive},
		{ID: "3", Name: "Cá", Description: "Các loại cá nước ngọt, mặn...", ProductCount: 240, CreatedDate: "20/8/2025", Status: entity.CategoryActive},
		{ID: "4", Name: "Lương thực", Description: "Các loại gạo, bột mì...", ProductCount: 240, CreatedDate: "20/8/2025", Status: entity.CategoryActive},
		{ID: "5", Name: "Đồ uống", Description: "Các loại nước uống, bia ...", ProductCount: 240, CreatedDate: "20/8/2025", Status: entity.CategoryActive},
		{ID: "6", Name: "Gia vị", Description: "Các loại gia vị ....", ProductCount: 240, CreatedDate: "20/8/2025", Status: entity.CategoryActive},
	}
}

// Ingredients returns the default ingredient list.
func Ingredients() []entity.Item {
	return []entity.Item{
		{ID: "101", Name: "Thịt bò Úc", Image: "/images/thit-bo-uc.jpg", Category: "Thịt", Quantity: 25, Unit: "kg", ImportDate: "18/08/2025", Price: "185000đ", Supplier: "Chợ đầu mối Bình Điền", Employee: "Nguyễn Văn An", Status: entity.StatusActive},
		{ID: "102", Name: "Tôm sú", Image: "/images/tom-su.jpg", Category: "Cá", Quantity: 12, Unit: "kg", ImportDate: "19/08/2025", Price: "220000đ", Supplier: "Vựa hải sản Phan Thiết", Employee: "Trần Thị Bích", Status: entity.StatusActive},
		{ID: "103", Name: "Rau xà lách", Image: "/images/rau-xa-lach.jpg", Category: "Rau củ quả", Quantity: 8, Unit: "kg", ImportDate: "20/08/2025", Price: "25000đ", Supplier: "HTX Đà Lạt", Employee: "Nguyễn Văn An", Status: entity.StatusLowStock},
		{ID: "104", Name: "Gạo ST25", Image: "/images/gao-st25.jpg", Category: "Lương thực", Quantity: 80, Unit: "kg", ImportDate: "15/08/2025", Price: "32000đ", Supplier: "Đại lý gạo Sóc Trăng", Employee: "Trần Thị Bích", Status: entity.StatusActive},
		{ID: "105", Name: "Nước mắm Phú Quốc", Image: "/images/nuoc-mam.jpg", Category: "Gia vị", Quantity: 30, Unit: "chai", ImportDate: "10/08/2025", Price: "65000đ", Supplier: "Cty Khải Hoàn", Employee: "Nguyễn Văn An", Status: entity.StatusActive},
		{ID: "106", Name: "Hành tím", Image: "/images/hanh-tim.jpg", Category: "Rau củ quả", Quantity: 3, Unit: "kg", ImportDate: "12/08/2025", Price: "40000đ", Supplier: "Chợ Vĩnh Châu", Employee: "Trần Thị Bích", Status: entity.StatusLowStock},
		{ID: "107", Name: "Cá thu", Image: "/images/ca-thu.jpg", Category: "Cá", Quantity: 0, Unit: "kg", ImportDate: "05/08/2025", Price: "150000đ", Supplier: "Vựa hải sản Phan Thiết", Employee: "Nguyễn Văn An", Status: entity.StatusExpired},
	}
}

// Products returns the default product list.
func Products() []entity.Item {
	return []entity.Item{
		{ID: "201", Name: "Bia Sài Gòn", Image: "/images/bia-sai-gon.jpg", Category: "Đồ uống", Quantity: 120, Unit: "lon", ImportDate: "17/08/2025", Price: "15000đ", Supplier: "Tổng kho SABECO", Employee: "Trần Thị Bích", Status: entity.StatusActive},
		{ID: "202", Name: "Nước suối Lavie", Image: "/images/lavie.jpg", Category: "Đồ uống", Quantity: 200, Unit: "chai", ImportDate: "17/08/2025", Price: "8000đ", Supplier: "Đại lý nước giải khát Quận 7", Employee: "Nguyễn Văn An", Status: entity.StatusActive},
		{ID: "203", Name: "Chả giò hải sản", Image: "/images/cha-gio.jpg", Category: "Cá", Quantity: 15, Unit: "hộp", ImportDate: "19/08/2025", Price: "55000đ", Supplier: "Bếp trung tâm", Employee: "Trần Thị Bích", Status: entity.StatusLowStock},
		{ID: "204", Name: "Bánh mì que", Image: "/images/banh-mi-que.jpg", Category: "Lương thực", Quantity: 60, Unit: "cái", ImportDate: "20/08/2025", Price: "12000đ", Supplier: "Bếp trung tâm", Employee: "Nguyễn Văn An", Status: entity.StatusActive},
	}
}

// Default credentials for the seeded accounts. Replace after first login.
const DefaultPassword = "admin123"

// Employees returns the default back-office accounts. The hash is derived
// once at first use so the bundled dataset never embeds one.
func Employees() []entity.Employee {
	defaultHashOnce.Do(func() { defaultHash = mustHash(DefaultPassword) })
	return []entity.Employee{
		{ID: "1", Username: "admin", FullName: "Quản trị viên", Role: "admin", Status: "active", CreatedDate: "20/8/2025", PasswordHash: defaultHash},
		{ID: "2", Username: "thukho", FullName: "Nguyễn Văn An", Role: "staff", Status: "active", CreatedDate: "20/8/2025", PasswordHash: defaultHash},
	}
}

var (
	defaultHashOnce sync.Once
	defaultHash     string
)

// History returns the default (empty) event log.
func History() []entity.HistoryEvent {
	return []entity.HistoryEvent{}
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt only fails on oversized input; the constant above is short.
		panic("seed: hash default password: " + err.Error())
	}
	return string(hash)
}
