package repository

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Blob keys. Each store owns exactly one blob and rewrites it whole on
// every mutation.
const (
	BlobMenu         = "menu"
	BlobOrderHistory = "order_history"
	BlobCloudConfig  = "cloud_config"
)

var ErrBlobNotFound = errors.New("blob not found")

type Blob struct {
	Key  string `gorm:"primaryKey;size:64"`
	Data []byte
}

type BlobRepository struct {
	DB *gorm.DB
}

func NewBlobRepository(db *gorm.DB) *BlobRepository {
	return &BlobRepository{DB: db}
}

func (r *BlobRepository) Load(key string, out any) error {
	var b Blob
	if err := r.DB.First(&b, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBlobNotFound
		}
		return err
	}
	return json.Unmarshal(b.Data, out)
}

func (r *BlobRepository) Save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.DB.Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&Blob{Key: key, Data: data}).Error
}
