package model

// Doctor mirrors the doctors table. Email was added in a later schema
// revision and may be empty on old rows.
type Doctor struct {
	ID             int64  `db:"id" json:"id"`
	Name           string `db:"name" json:"name"`
	Specialization string `db:"specialization" json:"specialization"`
	Contact        string `db:"contact" json:"contact"`
	Email          string `db:"email" json:"email"`
}

type DoctorRequest struct {
	Name           string `json:"name" validate:"required"`
	Specialization string `json:"specialization" validate:"required"`
	Contact        string `json:"contact"`
	Email          string `json:"email"`
}

// DoctorRef is the id+name pair the appointment form lists.
type DoctorRef struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}
