package entity

// Prescription validation states.
const (
	PrescriptionPending   = "pendiente"
	PrescriptionValidated = "validada"
	PrescriptionRejected  = "rechazada"
)

// PrescriptionProduct is a product line listed on a prescription.
type PrescriptionProduct struct {
	DocumentID string `json:"_id,omitempty"`
	ID         int64  `json:"id"`
	Name       string `json:"nombre"`
	Quantity   int    `json:"cantidad"`
}

// Prescription is an uploaded medical prescription.
type Prescription struct {
	ID               string                `json:"_id"`
	PatientDNI       string                `json:"pacienteDNI"`
	DoctorCMP        string                `json:"medicoCMP"`
	IssuedOn         string                `json:"fechaEmision"`
	Products         []PrescriptionProduct `json:"productos"`
	FileURL          string                `json:"archivoPDF"`
	ValidationStatus string                `json:"estadoValidacion"`
	CreatedAt        string                `json:"createdAt,omitempty"`
	UpdatedAt        string                `json:"updatedAt,omitempty"`
}

// IsValidated reports whether the prescription was approved.
func (p Prescription) IsValidated() bool {
	return p.ValidationStatus == PrescriptionValidated
}

// PrescriptionPage is one page of the prescription filter endpoint.
type PrescriptionPage struct {
	Page     int            `json:"page"`
	PageSize int            `json:"pagesize"`
	Total    int            `json:"total"`
	Items    []Prescription `json:"items"`
}

// PrescriptionFilter narrows the prescription listing.
type PrescriptionFilter struct {
	DNI      string
	CMP      string
	Status   string
	Page     int
	PageSize int
}

// PrescriptionUpload is a PDF to be attached to a new prescription.
type PrescriptionUpload struct {
	FileName string
	Content  []byte
	Fields   map[string]string
}

// Doctor is a registered physician.
type Doctor struct {
	ID                string `json:"_id"`
	CMP               string `json:"cmp"`
	Name              string `json:"nombre"`
	Specialty         string `json:"especialidad"`
	ValidRegistration bool   `json:"colegiaturaValida"`
}

// DoctorPage is one page of the doctor filter endpoint.
type DoctorPage struct {
	Page  int      `json:"page"`
	Limit int      `json:"limit"`
	Total int      `json:"total"`
	Items []Doctor `json:"items"`
}

// DoctorFilter narrows the doctor listing.
type DoctorFilter struct {
	Name              string
	Specialty         string
	ValidRegistration *bool
	Page              int
	Limit             int
}
