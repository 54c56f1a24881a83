// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Profile is the set of display fields the users service returns for the current account.
// It is what the caller hands to the session on login; subject and role always come from the credential.
type Profile struct {
	Name     string `json:"nombre"`
	Surname  string `json:"apellido"`
	Email    string `json:"email"`
	District string `json:"distrito,omitempty"`
	DNI      string `json:"dni,omitempty"`
	Role     string `json:"role,omitempty"`
}

// Identity is the resolved "current user": cached profile fields merged with decoded claims.
type Identity struct {
	SubjectID   string `json:"dni"`
	DisplayName string `json:"nombre"`
	Surname     string `json:"apellido"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	District    string `json:"distrito,omitempty"`
}

// NewIdentity merges profile fields with the credential's claims.
// Claims win for SubjectID and Role regardless of what the profile says.
func NewIdentity(profile Profile, claims *Claims) *Identity {
	identity := &Identity{
		DisplayName: profile.Name,
		Surname:     profile.Surname,
		Email:       profile.Email,
		District:    profile.District,
	}
	if claims != nil {
		identity.SubjectID = claims.Subject
		identity.Role = claims.Role
	}

	return identity
}

// Profile returns the display fields of the identity.
func (i *Identity) Profile() Profile {
	return Profile{
		Name:     i.DisplayName,
		Surname:  i.Surname,
		Email:    i.Email,
		District: i.District,
		DNI:      i.SubjectID,
		Role:     i.Role.String(),
	}
}

// Clone returns a copy that callers may mutate freely.
func (i *Identity) Clone() *Identity {
	if i == nil {
		return nil
	}
	clone := *i

	return &clone
}

// FullName joins display name and surname.
func (i *Identity) FullName() string {
	switch {
	case i.DisplayName == "":
		return i.Surname
	case i.Surname == "":
		return i.DisplayName
	default:
		return i.DisplayName + " " + i.Surname
	}
}
