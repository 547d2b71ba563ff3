package models

import (
	"tripbook/db"
)

func Init() {
	db.Instance.AutoMigrate(&User{})
	db.Instance.AutoMigrate(&Grant{})
	db.Instance.AutoMigrate(&Trip{})
	db.Instance.AutoMigrate(&Collaborator{})
	db.Instance.AutoMigrate(&ItineraryItem{})
	db.Instance.AutoMigrate(&ItemPhoto{})
	db.Instance.AutoMigrate(&Memoir{})
	db.Instance.AutoMigrate(&MemoirShare{})
	db.Instance.AutoMigrate(&Expense{})
	db.Instance.AutoMigrate(&ChecklistItem{})
	db.Instance.AutoMigrate(&TripNote{})
}
