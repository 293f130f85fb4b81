package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/campushq/advising-backend/internal/config"
	"github.com/campushq/advising-backend/internal/database"
	"github.com/campushq/advising-backend/internal/logger"
	"github.com/campushq/advising-backend/internal/model"
	"github.com/campushq/advising-backend/internal/repository"
	"github.com/campushq/advising-backend/internal/service"
)

// Seeds a demo dataset: one department, one semester, classrooms,
// courses, faculty, published offerings, and 50 students.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	departmentRepo := repository.NewDepartmentRepository(pool)
	semesterRepo := repository.NewSemesterRepository(pool)
	classroomRepo := repository.NewClassroomRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	facultyRepo := repository.NewFacultyRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	offeringRepo := repository.NewOfferingRepository(pool)

	authService := service.NewAuthService(cfg, nil)

	fmt.Println("=== Seeding Demo Data ===")

	// ─── Department ────────────────────────────────────────────────────
	var departmentID int
	err = pool.QueryRow(ctx, "SELECT id FROM departments WHERE code = $1", "CSE").Scan(&departmentID)
	if err != nil {
		if err != pgx.ErrNoRows {
			log.Fatal().Err(err).Msg("Failed to check existing department")
		}
		department := &model.Department{Name: "Computer Science and Engineering", Code: "CSE"}
		if err := departmentRepo.Create(ctx, department); err != nil {
			log.Fatal().Err(err).Msg("Failed to create department")
		}
		departmentID = department.ID
		fmt.Printf("Created department CSE with ID: %d\n", departmentID)
	} else {
		fmt.Printf("Found existing department CSE with ID: %d\n", departmentID)
	}

	// ─── Semester ──────────────────────────────────────────────────────
	semester, err := semesterRepo.Current(ctx)
	if err != nil {
		semester = &model.Semester{Season: model.SeasonFall, Year: 2026}
		if err := semesterRepo.Create(ctx, semester); err != nil {
			log.Fatal().Err(err).Msg("Failed to create semester")
		}
		fmt.Printf("Opened semester Fall 2026 with ID: %d\n", semester.ID)
	} else {
		fmt.Printf("Using current semester %s %d (ID: %d)\n", semester.Season, semester.Year, semester.ID)
	}

	// ─── Classrooms ────────────────────────────────────────────────────
	classrooms := make([]*model.Classroom, 0, 4)
	for _, room := range []struct {
		building string
		roomNo   string
	}{
		{"Engineering Hall", "101"},
		{"Engineering Hall", "203"},
		{"Science Annex", "B12"},
		{"Science Annex", "L04"},
	} {
		classroom := &model.Classroom{Building: room.building, RoomNo: room.roomNo}
		if err := classroomRepo.Create(ctx, classroom); err != nil {
			fmt.Printf("Skipping classroom %s %s: %v\n", room.building, room.roomNo, err)
			continue
		}
		classrooms = append(classrooms, classroom)
	}
	if len(classrooms) < 2 {
		log.Fatal().Msg("Not enough classrooms seeded")
	}
	fmt.Printf("Created %d classrooms\n", len(classrooms))

	// ─── Courses ───────────────────────────────────────────────────────
	courseDefs := []struct {
		code    string
		title   string
		credits int
	}{
		{"CSE-110", "Structured Programming", 3},
		{"CSE-220", "Data Structures", 3},
		{"CSE-230", "Discrete Mathematics", 3},
		{"CSE-310", "Database Systems", 4},
		{"CSE-330", "Operating Systems", 4},
	}
	courses := make([]*model.Course, 0, len(courseDefs))
	for _, def := range courseDefs {
		course := &model.Course{
			DepartmentID: departmentID,
			CourseCode:   def.code,
			Title:        def.title,
			Credits:      def.credits,
		}
		if err := courseRepo.Create(ctx, course); err != nil {
			fmt.Printf("Skipping course %s: %v\n", def.code, err)
			continue
		}
		courses = append(courses, course)
	}
	fmt.Printf("Created %d courses\n", len(courses))

	// ─── Faculty ───────────────────────────────────────────────────────
	facultyHash, err := authService.HashPassword("advising123")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash faculty password")
	}

	facultyNames := []string{
		"Farhana Rahman", "Mahmud Hasan", "Nusrat Jahan", "Tanvir Ahmed", "Sadia Islam",
	}
	faculty := make([]*model.Faculty, 0, len(facultyNames))
	for i, name := range facultyNames {
		f := &model.Faculty{
			DepartmentID: departmentID,
			Name:         name,
			Email:        fmt.Sprintf("faculty%d@campushq.edu", i+1),
			PasswordHash: facultyHash,
		}
		if err := facultyRepo.Create(ctx, f); err != nil {
			fmt.Printf("Skipping faculty %s: %v\n", name, err)
			continue
		}
		faculty = append(faculty, f)
	}
	if len(faculty) == 0 {
		log.Fatal().Msg("No faculty seeded")
	}
	fmt.Printf("Created %d faculty members\n", len(faculty))

	// ─── Offerings ─────────────────────────────────────────────────────
	offeringCount := 0
	for i, course := range courses {
		labRoom := &classrooms[len(classrooms)-1].ID
		labTime := "Wed 14:00-16:00"
		offering := &model.CourseOffering{
			SemesterID:   semester.ID,
			DepartmentID: departmentID,
			CourseID:     course.ID,
			FacultyID:    faculty[i%len(faculty)].ID,
			Section:      1,
			ClassroomID:  classrooms[i%len(classrooms)].ID,
			LabRoomID:    labRoom,
			ClassTime:    "Sun/Tue 10:00-11:30",
			LabTime:      &labTime,
			Capacity:     40,
		}
		if err := offeringRepo.Create(ctx, offering); err != nil {
			fmt.Printf("Skipping offering for %s: %v\n", course.CourseCode, err)
			continue
		}
		offeringCount++
	}
	fmt.Printf("Published %d offerings\n", offeringCount)

	// ─── Students ──────────────────────────────────────────────────────
	studentHash, err := authService.HashPassword("student123")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash student password")
	}

	names := []string{
		"Arif Chowdhury", "Bushra Karim", "Chandan Das", "Dilruba Akter", "Emon Hossain",
		"Fariha Tasnim", "Galib Khan", "Hafsa Begum", "Imran Sheikh", "Jannatul Ferdous",
		"Kamrul Islam", "Lamia Haque", "Mehedi Hasan", "Nabila Sultana", "Omar Faruk",
		"Priya Saha", "Quazi Nafis", "Raisa Anjum", "Sakib Mahmud", "Tahmina Akhter",
		"Usman Gani", "Varsha Rani", "Wasif Zaman", "Yeasin Arafat", "Zarin Subah",
		"Abir Roy", "Bristy Dey", "Chayan Paul", "Dola Rani", "Ehsanul Karim",
		"Faisal Mahmud", "Gulshan Ara", "Hridoy Ahmed", "Ishrat Jahan", "Junaid Alam",
		"Konika Biswas", "Liton Mia", "Munia Khatun", "Niloy Ghosh", "Oishee Rahman",
		"Parvez Musharraf", "Rokeya Sultana", "Shuvo Dutta", "Tania Rahman", "Ullash Barua",
		"Wasima Nur", "Xerxes Halder", "Yasmin Ara", "Zahid Hasan", "Arpita Sen",
	}

	successCount := 0
	for i := 0; i < 50; i++ {
		student := &model.Student{
			StudentNo:    fmt.Sprintf("2026-1-%04d", i+1),
			Name:         names[i],
			Email:        fmt.Sprintf("student%d@campushq.edu", i+1),
			PasswordHash: studentHash,
			DepartmentID: departmentID,
		}

		if err := studentRepo.Create(ctx, student); err != nil {
			fmt.Printf("Error creating student %s (%s): %v\n", student.Name, student.StudentNo, err)
		} else {
			successCount++
			if (i+1)%10 == 0 {
				fmt.Printf("Created %d students...\n", i+1)
			}
		}
	}

	fmt.Printf("\nSeed completed! Successfully added %d/50 students.\n", successCount)
}
