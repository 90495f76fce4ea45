package store

const (
	createUser = `INSERT INTO users (username, email, password_hash, salt, registration_date, is_admin, is_active)
	VALUES (?, ?, ?, ?, ?, ?, ?);`

	findUserByID = `SELECT id, username, email, password_hash, salt, registration_date, last_login, is_admin, is_active
	FROM users
	WHERE id = ?;`

	findUserByUsername = `SELECT id, username, email, password_hash, salt, registration_date, last_login, is_admin, is_active
	FROM users
	WHERE username = ?;`

	findUserByEmail = `SELECT id, username, email, password_hash, salt, registration_date, last_login, is_admin, is_active
	FROM users
	WHERE email = ?;`

	updateUserPassword = `UPDATE users
	SET password_hash = ?, salt = ?
	WHERE id = ?;`

	updateUserLastLogin = `UPDATE users
	SET last_login = ?
	WHERE id = ?;`

	findLanguageByCode = `SELECT id, code, name, is_active
	FROM languages
	WHERE code = ?;`

	listActiveLanguages = `SELECT id, code, name, is_active
	FROM languages
	WHERE is_active = 1
	ORDER BY name;`

	saveLanguage = `INSERT INTO languages (code, name, is_active)
	VALUES (?, ?, ?)
	ON CONFLICT (code) DO UPDATE SET name = excluded.name, is_active = excluded.is_active;`

	findLessonByID = `SELECT id, title, description, category_id, language_id, difficulty, xp_reward, order_index, is_active
	FROM lessons
	WHERE id = ?;`

	listCategoriesByLanguage = `SELECT id, name, description, language_id
	FROM lesson_categories
	WHERE language_id = ?
	ORDER BY id;`

	findExerciseByID = `SELECT id, lesson_id, type, content, correct_answer, options, hint, image_path, audio_path, xp_reward, order_index
	FROM exercises
	WHERE id = ?;`

	listExercisesByLesson = `SELECT id, lesson_id, type, content, correct_answer, options, hint, image_path, audio_path, xp_reward, order_index
	FROM exercises
	WHERE lesson_id = ?
	ORDER BY order_index;`

	findProgressByUserAndLesson = `SELECT id, user_id, lesson_id, completed, completion_date, score
	FROM user_progress
	WHERE user_id = ? AND lesson_id = ?;`

	listProgressByUser = `SELECT id, user_id, lesson_id, completed, completion_date, score
	FROM user_progress
	WHERE user_id = ?;`

	insertProgress = `INSERT INTO user_progress (user_id, lesson_id, completed, completion_date, score)
	VALUES (?, ?, ?, ?, ?);`

	updateProgress = `UPDATE user_progress
	SET completed = ?, completion_date = ?, score = ?
	WHERE user_id = ? AND lesson_id = ?;`

	initUserStats = `INSERT INTO user_stats (user_id) VALUES (?);`

	findStatsByUser = `SELECT user_id, total_xp, lessons_completed, exercises_completed, correct_answers, incorrect_answers
	FROM user_stats
	WHERE user_id = ?;`

	addStatsXP = `UPDATE user_stats
	SET total_xp = total_xp + ?
	WHERE user_id = ?;`

	recordStatsLesson = `UPDATE user_stats
	SET lessons_completed = lessons_completed + 1
	WHERE user_id = ?;`

	recordStatsAnswer = `UPDATE user_stats
	SET exercises_completed = exercises_completed + 1,
	    correct_answers = correct_answers + ?,
	    incorrect_answers = incorrect_answers + ?
	WHERE user_id = ?;`

	initUserStreak = `INSERT INTO user_streaks (user_id) VALUES (?);`

	findStreakByUser = `SELECT user_id, current_streak, max_streak, last_activity_date
	FROM user_streaks
	WHERE user_id = ?;`

	saveStreak = `UPDATE user_streaks
	SET current_streak = ?, max_streak = ?, last_activity_date = ?
	WHERE user_id = ?;`
)
