package dto

// ApplicationForm carries the raw values of a submitted application form.
// Field names match the HTML form controls; nothing is validated at binding
// time so the validator sees exactly what the applicant sent.
type ApplicationForm struct {
	Email     string   `form:"email"`
	FullName  string   `form:"fullName"`
	Gender    string   `form:"gender"`
	Whatsapp  string   `form:"whatsapp"`
	Education string   `form:"college"`
	Country   string   `form:"country"`
	Linkedin  string   `form:"linkedin"`
	Domains   []string `form:"domains"`
}

// Fields returns the scalar form values keyed by form field name, used for
// audit logging of inbound submissions.
func (f *ApplicationForm) Fields() map[string]string {
	return map[string]string{
		"email":    f.Email,
		"fullName": f.FullName,
		"gender":   f.Gender,
		"whatsapp": f.Whatsapp,
		"college":  f.Education,
		"country":  f.Country,
		"linkedin": f.Linkedin,
	}
}
