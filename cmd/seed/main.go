package main

import (
	"log"

	"designhub/internal/database"
	"designhub/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	db, err := database.Connect("designhub.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Firm{},
		&domain.FirmClient{},
		&domain.Project{},
		&domain.ProjectClient{},
		&domain.ProjectDesigner{},
		&domain.Room{},
		&domain.Product{},
		&domain.PendingProduct{},
		&domain.PendingProductOption{},
		&domain.Comment{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM comments")
	db.Exec("DELETE FROM pending_product_options")
	db.Exec("DELETE FROM pending_products")
	db.Exec("DELETE FROM products")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM projects_designers")
	db.Exec("DELETE FROM projects_clients")
	db.Exec("DELETE FROM projects")
	db.Exec("DELETE FROM firms_clients")
	db.Exec("DELETE FROM firms")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")
	designerHash, _ := bcrypt.GenerateFromPassword([]byte("designer123"), bcrypt.DefaultCost)
	designer := domain.User{
		Email:        "dana@studio.example",
		PasswordHash: string(designerHash),
		Name:         "Dana Designer",
	}
	db.Create(&designer)

	firm := domain.Firm{
		Name:       "Studio North",
		WebsiteURL: "https://studio-north.example",
		OwnerID:    designer.ID,
	}
	db.Create(&firm)
	db.Model(&designer).Update("firm_id", firm.ID)

	clientHash, _ := bcrypt.GenerateFromPassword([]byte("client123"), bcrypt.DefaultCost)
	client := domain.User{
		Email:        "casey@mail.example",
		PasswordHash: string(clientHash),
		Name:         "Casey Client",
	}
	db.Create(&client)
	db.Create(&domain.FirmClient{FirmID: firm.ID, ClientID: client.ID})

	log.Println("Creating demo project...")
	project := domain.Project{
		FirmID: firm.ID,
		Name:   "Loft",
		Status: domain.ProjectNew,
	}
	db.Create(&project)
	db.Create(&domain.ProjectDesigner{ProjectID: project.ID, DesignerID: designer.ID})
	db.Create(&domain.ProjectClient{ProjectID: project.ID, ClientID: client.ID})

	kitchen := domain.Room{ProjectID: project.ID, Name: "Kitchen", Status: domain.RoomInProgress}
	db.Create(&kitchen)
	living := domain.Room{ProjectID: project.ID, Name: "Living room", Status: domain.RoomNew}
	db.Create(&living)

	price := 1250.0
	qty := 2
	db.Create(&domain.Product{
		RoomID:   living.ID,
		Name:     "Linen sofa",
		Price:    &price,
		Quantity: &qty,
		Link:     "https://shop.example/sofa",
		Status:   domain.ProductApproved,
	})

	one := 1
	p100 := 100.0
	p200 := 200.0
	faucet := domain.PendingProduct{
		RoomID:   kitchen.ID,
		Name:     "Faucet",
		Quantity: &one,
		Options: []domain.PendingProductOption{
			{Name: "Brushed steel", Price: &p100, Link: "https://shop.example/faucet-steel"},
			{Name: "Matte black", Price: &p200, Link: "https://shop.example/faucet-black"},
		},
	}
	db.Create(&faucet)

	db.Create(&domain.Comment{
		CommentableType: domain.CommentableRoom,
		CommentableID:   kitchen.ID,
		UserID:          client.ID,
		Comment:         "Can we keep the counters light?",
	})

	log.Println("Seed complete:")
	log.Println("  designer: dana@studio.example / designer123")
	log.Println("  client:   casey@mail.example / client123")
}
