package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"

	studentModel "schoolku_backend/internals/features/academics/students/model"
	userModel "schoolku_backend/internals/features/users/user/model"
)

func TestPayerIdentity(t *testing.T) {
	guardian := "Jane Doe"
	blank := ""

	student := &studentModel.StudentModel{
		StudentFirstName:    "Amina",
		StudentLastName:     "Okafor",
		StudentGuardianName: &guardian,
	}
	account := &userModel.UserModel{UserEmail: "jane@example.com"}

	name, email := payerIdentity(student, account)
	assert.Equal(t, "Jane Doe", name)
	assert.Equal(t, "jane@example.com", email)

	student.StudentGuardianName = nil
	name, _ = payerIdentity(student, account)
	assert.Equal(t, "Amina Okafor", name)

	student.StudentGuardianName = &blank
	name, _ = payerIdentity(student, account)
	assert.Equal(t, "Amina Okafor", name, "empty guardian name must not win")

	name, email = payerIdentity(nil, nil)
	assert.Equal(t, "Guardian", name)
	assert.Equal(t, "", email)
}
