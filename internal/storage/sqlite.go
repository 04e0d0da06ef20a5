// internal/storage/sqlite.go
package storage

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"meal-planner/internal/models"
)

// SQLiteStorage keeps catalog reference data. Meal selections are never
// written here.
type SQLiteStorage struct {
	db *sql.DB
}

func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	storage := &SQLiteStorage{db: db}
	if err := storage.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return storage, nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

func (s *SQLiteStorage) initSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS dishes (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        meal_type TEXT NOT NULL,
        position INTEGER NOT NULL,
        name TEXT NOT NULL,
        calories_kcal REAL NOT NULL,
        protein_g REAL NOT NULL,
        carbs_g REAL NOT NULL,
        fat_g REAL NOT NULL,
        UNIQUE (meal_type, name)
    );

    CREATE TABLE IF NOT EXISTS dish_ingredients (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        dish_id INTEGER NOT NULL,
        name TEXT NOT NULL,
        grams REAL NOT NULL,
        FOREIGN KEY (dish_id) REFERENCES dishes(id) ON DELETE CASCADE
    );

    CREATE TABLE IF NOT EXISTS products (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        name TEXT NOT NULL,
        quantity TEXT NOT NULL,
        description TEXT NOT NULL
    );

    CREATE INDEX IF NOT EXISTS idx_dishes_meal_type ON dishes(meal_type, position);
    CREATE INDEX IF NOT EXISTS idx_dish_ingredients_dish_id ON dish_ingredients(dish_id);
    `

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// SaveCatalog replaces all stored reference data with c.
func (s *SQLiteStorage) SaveCatalog(c *models.Catalog) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"dish_ingredients", "dishes", "products"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	dishQuery := `
        INSERT INTO dishes (meal_type, position, name, calories_kcal, protein_g, carbs_g, fat_g)
        VALUES (?, ?, ?, ?, ?, ?, ?)
    `
	ingredientQuery := `
        INSERT INTO dish_ingredients (dish_id, name, grams)
        VALUES (?, ?, ?)
    `
	for _, mealType := range models.MealTypes {
		for pos, dish := range c.Dishes[mealType] {
			res, err := tx.Exec(dishQuery,
				string(mealType), pos, dish.Name,
				dish.CaloriesKcal, dish.ProteinG, dish.CarbsG, dish.FatG)
			if err != nil {
				return fmt.Errorf("failed to insert dish %q: %w", dish.Name, err)
			}
			dishID, err := res.LastInsertId()
			if err != nil {
				return fmt.Errorf("failed to read dish id: %w", err)
			}

			for _, ing := range dish.Ingredients {
				if _, err := tx.Exec(ingredientQuery, dishID, ing.Name, ing.Grams); err != nil {
					return fmt.Errorf("failed to insert ingredient: %w", err)
				}
			}
		}
	}

	productQuery := `
        INSERT INTO products (name, quantity, description)
        VALUES (?, ?, ?)
    `
	for _, p := range c.Products {
		if _, err := tx.Exec(productQuery, p.Name, p.Quantity, p.Description); err != nil {
			return fmt.Errorf("failed to insert product: %w", err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStorage) HasCatalog() (bool, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM dishes").Scan(&n); err != nil {
		return false, fmt.Errorf("failed to count dishes: %w", err)
	}
	return n > 0, nil
}

// LoadCatalog reads the stored catalog back in its original order.
func (s *SQLiteStorage) LoadCatalog() (*models.Catalog, error) {
	c := &models.Catalog{
		Dishes: make(map[models.MealType][]models.Dish),
	}

	query := `
        SELECT id, meal_type, name, calories_kcal, protein_g, carbs_g, fat_g
        FROM dishes
        ORDER BY meal_type, position
    `
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query dishes: %w", err)
	}

	var ids []int64
	var types []models.MealType
	for rows.Next() {
		var id int64
		var mealType string
		dish := models.Dish{}

		err := rows.Scan(&id, &mealType, &dish.Name,
			&dish.CaloriesKcal, &dish.ProteinG, &dish.CarbsG, &dish.FatG)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan dish: %w", err)
		}

		t := models.MealType(mealType)
		c.Dishes[t] = append(c.Dishes[t], dish)
		ids = append(ids, id)
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("failed to read dishes: %w", err)
	}
	rows.Close()

	// Ingredients are loaded after the dish cursor is closed; positions in
	// c.Dishes follow the same order as ids.
	next := make(map[models.MealType]int)
	for i, id := range ids {
		t := types[i]
		dish := &c.Dishes[t][next[t]]
		next[t]++
		if err := s.loadIngredientsForDish(id, dish); err != nil {
			return nil, fmt.Errorf("failed to load ingredients for dish %s: %w", dish.Name, err)
		}
	}

	products, err := s.loadProducts()
	if err != nil {
		return nil, err
	}
	c.Products = products

	return c, nil
}

func (s *SQLiteStorage) loadIngredientsForDish(dishID int64, dish *models.Dish) error {
	query := `
        SELECT name, grams
        FROM dish_ingredients
        WHERE dish_id = ?
        ORDER BY id
    `

	rows, err := s.db.Query(query, dishID)
	if err != nil {
		return fmt.Errorf("failed to query ingredients: %w", err)
	}
	defer rows.Close()

	ingredients := models.Ingredients{}
	for rows.Next() {
		ing := models.Ingredient{}
		if err := rows.Scan(&ing.Name, &ing.Grams); err != nil {
			return fmt.Errorf("failed to scan ingredient: %w", err)
		}
		ingredients = append(ingredients, ing)
	}

	dish.Ingredients = ingredients
	return rows.Err()
}

func (s *SQLiteStorage) loadProducts() ([]models.Product, error) {
	rows, err := s.db.Query(`SELECT name, quantity, description FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p := models.Product{}
		if err := rows.Scan(&p.Name, &p.Quantity, &p.Description); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
