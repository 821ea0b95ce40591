package entity

type StaffStatus string

const (
	StaffOnDuty  StaffStatus = "on-duty"
	StaffOffDuty StaffStatus = "off-duty"
)

func (s StaffStatus) Valid() bool {
	return s == StaffOnDuty || s == StaffOffDuty
}

type Staff struct {
	ID         string      `json:"id" yaml:"id"`
	Name       string      `json:"name" yaml:"name"`
	Department string      `json:"department" yaml:"department"`
	EmployeeID string      `json:"employeeId" yaml:"employeeId"`
	Status     StaffStatus `json:"status" yaml:"status"`
	Avatar     string      `json:"avatar,omitempty" yaml:"avatar,omitempty"`
}
