package services

import "github.com/dmitrijs2005/shouxkream/internal/server/models"

// AddressDTO is the transport shape of a stored address.
type AddressDTO struct {
	Name      string `json:"name"`
	Recipient string `json:"recipient"`
	Phone     string `json:"phone"`
	Zipcode   string `json:"zipcode"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2"`
	IsDefault bool   `json:"isDefault"`
}

func ToAddressDTOs(in []models.Address) []AddressDTO {
	out := make([]AddressDTO, 0, len(in))
	for _, a := range in {
		out = append(out, AddressDTO{
			Name:      a.Name,
			Recipient: a.Recipient,
			Phone:     a.Phone,
			Zipcode:   a.Zipcode,
			Address1:  a.Address1,
			Address2:  a.Address2,
			IsDefault: a.IsDefault,
		})
	}
	return out
}
