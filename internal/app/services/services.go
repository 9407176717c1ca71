package services

// Services defined in this package:
// - AuthService: Handles login and user registration
// - CourseService: Handles course catalog operations
// - EnrollmentService: Handles enrollment lifecycle operations
// - StudentService: Handles student profile operations
// - GradeService: Handles assessment grade operations
// - NotificationService: Handles inbox notifications
// - UserService: Handles user profile operations
// - ReportService: Handles academic report aggregation
// - StatisticsService: Handles dashboard counters
