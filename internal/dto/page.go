package dto

// FormPageDTO is the view model of a form page. Error is set when the form
// is re-rendered after a rejected submission.
type FormPageDTO struct {
	Form   string            `json:"form" example:"login"`
	Action string            `json:"action" example:"/login"`
	Fields []string          `json:"fields" example:"username,password"`
	Roles  []string          `json:"roles,omitempty" example:"customer,worker,admin"`
	Values map[string]string `json:"values,omitempty"`
	Error  string            `json:"error,omitempty" example:"Invalid username or password"`
}

type HomePageDTO struct {
	Title    string `json:"title" example:"Order tracker"`
	Username string `json:"username,omitempty" example:"bob"`
	Role     string `json:"role,omitempty" example:"customer"`
}
