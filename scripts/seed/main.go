// Seeds the database with sample employees, a week of attendance and a
// few notifications. Wipes the collections first.
package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"hrms-lite/internal/config"
	"hrms-lite/internal/db"
	"hrms-lite/internal/models"
	"hrms-lite/internal/repository"
)

func main() {
	cfg := config.Load()

	ctx := context.Background()
	client, database := db.Connect(ctx, cfg.MongoURI, cfg.DatabaseName)
	defer db.Close(client)

	now := time.Now()
	employees := []models.Employee{
		{EmployeeID: "EMP001", FullName: "Rishav Kumar", Email: "rishav@hrmslite.com", Department: "Engineering", CreatedAt: now},
		{EmployeeID: "EMP002", FullName: "Anjali Sharma", Email: "anjali@hrmslite.com", Department: "Design", CreatedAt: now},
		{EmployeeID: "EMP003", FullName: "Rahul Singh", Email: "rahul@hrmslite.com", Department: "Marketing", CreatedAt: now},
		{EmployeeID: "EMP004", FullName: "Priya Verma", Email: "priya@hrmslite.com", Department: "HR", CreatedAt: now},
	}

	log.Println("seeding employees...")
	employeeCol := database.Collection("employees")
	if _, err := employeeCol.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("clear employees: %v", err)
	}
	employeeDocs := make([]interface{}, len(employees))
	for i := range employees {
		employeeDocs[i] = employees[i]
	}
	if _, err := employeeCol.InsertMany(ctx, employeeDocs); err != nil {
		log.Fatalf("insert employees: %v", err)
	}
	log.Printf("inserted %d employees", len(employees))

	log.Println("seeding attendance (last 7 days)...")
	attendanceCol := database.Collection("attendance")
	if _, err := attendanceCol.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("clear attendance: %v", err)
	}
	var attendanceDocs []interface{}
	for i := 0; i < 7; i++ {
		date := now.AddDate(0, 0, -i).Format(models.DateLayout)
		for _, emp := range employees {
			status := models.StatusPresent
			if rand.Intn(4) == 0 { // 25% chance absent
				status = models.StatusAbsent
			}
			attendanceDocs = append(attendanceDocs, models.Attendance{
				EmployeeID: emp.EmployeeID,
				Date:       date,
				Status:     status,
				MarkedAt:   now,
			})
		}
	}
	if _, err := attendanceCol.InsertMany(ctx, attendanceDocs); err != nil {
		log.Fatalf("insert attendance: %v", err)
	}
	log.Printf("inserted %d attendance records", len(attendanceDocs))

	log.Println("seeding notifications...")
	notificationCol := database.Collection("notifications")
	if _, err := notificationCol.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("clear notifications: %v", err)
	}
	notifications := []interface{}{
		models.Notification{Title: "New Employee Onboarded", Message: "Rishav Kumar has been added to Engineering department", Type: models.NotifySuccess, IsRead: false, CreatedAt: now},
		models.Notification{Title: "Attendance Marked", Message: "Daily attendance has been updated", Type: models.NotifyInfo, IsRead: false, CreatedAt: now},
		models.Notification{Title: "System Update", Message: "HRMS Lite has been updated to v1.0", Type: models.NotifyInfo, IsRead: true, CreatedAt: now.AddDate(0, 0, -1)},
	}
	if _, err := notificationCol.InsertMany(ctx, notifications); err != nil {
		log.Fatalf("insert notifications: %v", err)
	}
	log.Printf("inserted %d notifications", len(notifications))

	if err := repository.EnsureIndexes(ctx, database); err != nil {
		log.Fatalf("ensure indexes: %v", err)
	}
	log.Println("done")
}
