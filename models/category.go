package models

import "errors"

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

func (c Category) Validate() error {
	if c.ID == "" {
		return errors.New("category id is required")
	}
	if c.Name == "" {
		return errors.New("category name is required")
	}
	return nil
}
