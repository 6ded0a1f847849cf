package pod

import "github.com/bizsupportc/teamtrack-backend-go/internal/pkg/validator"

type CreatePodRequest struct {
	Name string `json:"name"`
}

func (r *CreatePodRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PodResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MemberCount int    `json:"member_count"`
}
