// Package registry ให้ registry pattern แบบ generic และ thread-safe
// ใช้เก็บ singleton instances ของแอป เช่น *mongo.Collection ตามชื่อ collection
package registry

import (
	"fmt"
	"sync"

	"github.com/itkpf2018/webapp-KPF-sub005/internal/common"
)

// Registry เก็บ items ตาม key แบบ thread-safe ผ่าน sync.RWMutex
// type parameter T ทำให้ใช้ซ้ำกับ object ชนิดไหนก็ได้
type Registry[T any] struct {
	items map[string]T
	mu    sync.RWMutex
}

// NewRegistry สร้าง registry ใหม่สำหรับชนิด T
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[string]T),
	}
}

// Register ลงทะเบียน item ใหม่ ถ้าชื่อซ้ำจะเขียนทับของเดิม
// คืน isNew = true เมื่อเป็น item ใหม่ และ error เมื่อชื่อว่าง
func (r *Registry[T]) Register(name string, item T) (isNew bool, err error) {
	if name == "" {
		return false, fmt.Errorf("ชื่อ item ว่างไม่ได้: %w", common.ErrRequiredField)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.items[name]
	r.items[name] = item
	return !exists, nil
}

// Get คืน item ตามชื่อ พร้อม boolean บอกว่าพบหรือไม่
func (r *Registry[T]) Get(name string) (item T, exists bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, exists = r.items[name]
	return item, exists
}

// GetOrCreate คืน item ตามชื่อ ถ้ายังไม่มีจะสร้างผ่าน creator
func (r *Registry[T]) GetOrCreate(name string, creator func() (T, error)) (item T, err error) {
	if name == "" {
		return item, fmt.Errorf("ชื่อ item ว่างไม่ได้: %w", common.ErrRequiredField)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, exists := r.items[name]; exists {
		return existing, nil
	}

	newItem, err := creator()
	if err != nil {
		return item, fmt.Errorf("สร้าง item ไม่สำเร็จ: %w", err)
	}

	r.items[name] = newItem
	return newItem, nil
}

// Len คืนจำนวน items ใน registry
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// ClearAll ลบ items ทั้งหมด ถ้ามี cleanup จะเรียกให้ทุก item ก่อนลบ
func (r *Registry[T]) ClearAll(cleanup func(T) error) (count int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count = len(r.items)
	if count == 0 {
		return 0, nil
	}

	if cleanup != nil {
		var errs []error
		for name, item := range r.items {
			if err := cleanup(item); err != nil {
				errs = append(errs, fmt.Errorf("cleanup %s ไม่สำเร็จ: %w", name, err))
			}
		}
		if len(errs) > 0 {
			return 0, fmt.Errorf("เกิดข้อผิดพลาดระหว่าง cleanup: %v", errs)
		}
	}

	r.items = make(map[string]T)
	return count, nil
}
